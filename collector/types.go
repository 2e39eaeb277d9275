package collector

// MemorySnapshot holds physical memory usage at a single collection instant.
// Used is always Total - Free; UsedPercent is 100*Used/Total rounded to two
// decimals.
type MemorySnapshot struct {
	Total       uint64  `json:"total"`
	Free        uint64  `json:"free"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`

	TotalHuman string `json:"total_human"`
	FreeHuman  string `json:"free_human"`
	UsedHuman  string `json:"used_human"`
}

// CPUSnapshot holds CPU topology, load averages and a usage estimate.
//
// UsagePercent is derived from a single read of the cumulative per-core tick
// counters: 100 * (1 - sum(idle) / sum(total)). Because the counters run
// since boot, the value reflects the idle fraction over the whole uptime and
// converges to a stable long-run figure rather than an instantaneous load.
type CPUSnapshot struct {
	Cores        int        `json:"cores"`
	ModelName    string     `json:"model_name"`
	LoadAvg      [3]float64 `json:"load_avg"`
	UsagePercent float64    `json:"usage_percent"`
}

// ProcessSnapshot holds resident memory and uptime of the monitor process.
// Uptime counts from the monotonic instant captured by NewCollector.
type ProcessSnapshot struct {
	MemoryRSS     uint64  `json:"memory_rss"`
	MemoryHuman   string  `json:"memory_human"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// SystemSnapshot holds host identity facts. Username is best-effort and may
// be empty.
type SystemSnapshot struct {
	Hostname string `json:"hostname"`
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
	Uptime   uint64 `json:"uptime"`
	Username string `json:"username"`
}

// NetworkSnapshot holds the interface count plus a name -> address-list map.
// The map is not logged; it exists for callers that need interface detail.
type NetworkSnapshot struct {
	InterfaceCount int                 `json:"interface_count"`
	Interfaces     map[string][]string `json:"interfaces"`
}
