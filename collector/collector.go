// Package collector gathers host and process resource snapshots.
//
// All collectors are best-effort: when an OS read fails they return zero
// values (or "Unknown" for the CPU model) instead of an error, so a failed
// read never aborts a monitoring tick.
package collector

import (
	"os"
	"os/user"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	gnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
)

// Collector produces metric snapshots. The start instant is captured once at
// construction and anchors process uptime.
type Collector struct {
	start time.Time
	pid   int32
}

// NewCollector creates a collector anchored at the current monotonic instant.
func NewCollector() *Collector {
	return &Collector{
		start: time.Now(),
		pid:   int32(os.Getpid()),
	}
}

// Memory returns a physical memory snapshot.
func (c *Collector) Memory() MemorySnapshot {
	var snap MemorySnapshot
	vm, err := mem.VirtualMemory()
	if err == nil && vm != nil {
		snap.Total = vm.Total
		snap.Free = vm.Free
		snap.Used = vm.Total - vm.Free
		if vm.Total > 0 {
			snap.UsedPercent = Round2(100 * float64(snap.Used) / float64(vm.Total))
		}
	}
	snap.TotalHuman = FormatBytes(snap.Total)
	snap.FreeHuman = FormatBytes(snap.Free)
	snap.UsedHuman = FormatBytes(snap.Used)
	return snap
}

// CPU returns core count, model name, load averages and the since-boot usage
// estimate. See CPUSnapshot for the usage formula and its limitation.
func (c *Collector) CPU() CPUSnapshot {
	snap := CPUSnapshot{ModelName: "Unknown"}

	if cores, err := cpu.Counts(true); err == nil {
		snap.Cores = cores
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		snap.ModelName = infos[0].ModelName
	}
	if avg, err := load.Avg(); err == nil && avg != nil {
		snap.LoadAvg = [3]float64{Round2(avg.Load1), Round2(avg.Load5), Round2(avg.Load15)}
	}
	if times, err := cpu.Times(true); err == nil {
		snap.UsagePercent = usageFromTicks(times)
	}
	return snap
}

// usageFromTicks computes 100 * (1 - sum(idle)/sum(total)) over cumulative
// per-core tick counters.
func usageFromTicks(times []cpu.TimesStat) float64 {
	var idle, total float64
	for _, t := range times {
		sum := t.User + t.Nice + t.System + t.Idle + t.Iowait + t.Irq + t.Softirq + t.Steal
		idle += t.Idle
		total += sum
	}
	if total == 0 {
		return 0
	}
	return Round2(100 * (1 - idle/total))
}

// Process returns resident memory and uptime of the monitor process itself.
func (c *Collector) Process() ProcessSnapshot {
	var snap ProcessSnapshot
	if p, err := process.NewProcess(c.pid); err == nil {
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			snap.MemoryRSS = mi.RSS
		}
	}
	snap.MemoryHuman = FormatBytes(snap.MemoryRSS)
	snap.UptimeSeconds = Round2(time.Since(c.start).Seconds())
	return snap
}

// System returns host identity facts. Username lookup is best-effort.
func (c *Collector) System() SystemSnapshot {
	snap := SystemSnapshot{Arch: runtime.GOARCH}
	if info, err := host.Info(); err == nil && info != nil {
		snap.Hostname = info.Hostname
		snap.Platform = info.Platform
		snap.Uptime = info.Uptime
		if info.KernelArch != "" {
			snap.Arch = info.KernelArch
		}
	}
	if u, err := user.Current(); err == nil {
		snap.Username = u.Username
	}
	return snap
}

// Network returns the interface count and a name -> address-list map.
func (c *Collector) Network() NetworkSnapshot {
	snap := NetworkSnapshot{Interfaces: make(map[string][]string)}
	ifaces, err := gnet.Interfaces()
	if err != nil {
		return snap
	}
	for _, iface := range ifaces {
		addrs := make([]string, 0, len(iface.Addrs))
		for _, a := range iface.Addrs {
			addrs = append(addrs, a.Addr)
		}
		snap.Interfaces[iface.Name] = addrs
	}
	snap.InterfaceCount = len(ifaces)
	return snap
}
