package monitor

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Rafiki81/sysmonitor/collector"
	"github.com/Rafiki81/sysmonitor/logger"
)

// stubSource returns fixed snapshots so per-tick line counts are
// deterministic.
type stubSource struct {
	memPercent float64
	cpuPercent float64
}

func (s stubSource) Memory() collector.MemorySnapshot {
	return collector.MemorySnapshot{
		Total: 1024, Free: 512, Used: 512,
		UsedPercent: s.memPercent,
		TotalHuman:  "1 KB", FreeHuman: "512 Bytes", UsedHuman: "512 Bytes",
	}
}

func (s stubSource) CPU() collector.CPUSnapshot {
	return collector.CPUSnapshot{
		Cores: 4, ModelName: "Test CPU",
		LoadAvg:      [3]float64{0.1, 0.2, 0.3},
		UsagePercent: s.cpuPercent,
	}
}

func (s stubSource) Process() collector.ProcessSnapshot {
	return collector.ProcessSnapshot{MemoryRSS: 2048, MemoryHuman: "2 KB", UptimeSeconds: 1.5}
}

func (s stubSource) System() collector.SystemSnapshot {
	return collector.SystemSnapshot{Hostname: "testhost", Platform: "linux", Arch: "amd64"}
}

func (s stubSource) Network() collector.NetworkSnapshot {
	return collector.NetworkSnapshot{InterfaceCount: 2, Interfaces: map[string][]string{"lo": nil, "eth0": nil}}
}

func newTestMonitor(t *testing.T, src Source) (*Monitor, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "system-monitor.log")
	lg, err := logger.New(path, zerolog.Nop())
	require.NoError(t, err)
	return NewMonitor(lg, src), path
}

func logLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestStartImmediateStop_OnlyLifecycleLines(t *testing.T) {
	m, path := newTestMonitor(t, stubSource{})
	m.Start(time.Hour) // interval never fires
	m.Stop()

	lines := logLines(t, path)
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "Monitoring started (interval: 3600000ms)")
	require.Contains(t, lines[1], "Monitoring stopped")
}

func TestStop_Idempotent(t *testing.T) {
	m, path := newTestMonitor(t, stubSource{})
	m.Start(time.Hour)
	m.Stop()
	m.Stop()

	lines := logLines(t, path)
	require.Len(t, lines, 2, "second Stop must not log a duplicate stop line")
	require.False(t, m.Running())
}

func TestStop_BeforeStartIsNoop(t *testing.T) {
	m, path := newTestMonitor(t, stubSource{})
	m.Stop()
	require.Empty(t, logLines(t, path))
}

func TestStart_Idempotent(t *testing.T) {
	m, path := newTestMonitor(t, stubSource{})
	m.Start(time.Hour)
	m.Start(time.Hour) // no-op while running
	require.True(t, m.Running())
	m.Stop()

	lines := logLines(t, path)
	require.Len(t, lines, 2, "second Start must not log a duplicate start line")
}

func TestTick_FixedLineOrder(t *testing.T) {
	m, path := newTestMonitor(t, stubSource{memPercent: 50, cpuPercent: 10})
	m.tick()

	lines := logLines(t, path)
	require.Len(t, lines, 6)
	require.Contains(t, lines[0], "Memory - Total: 1 KB, Free: 512 Bytes, Used: 512 Bytes (50.00%)")
	require.Contains(t, lines[1], "CPU - Cores: 4, Model: Test CPU, Load Avg: 0.10, 0.20, 0.30")
	require.Contains(t, lines[2], "CPU Usage: 10.00%")
	require.Contains(t, lines[3], "Process - Memory: 2 KB, Uptime: 1.50s")
	require.Contains(t, lines[4], "System - Host: testhost, Platform: linux, Arch: amd64")
	require.Contains(t, lines[5], "Network - Interfaces: 2")
	for _, line := range lines {
		require.Contains(t, line, "[INFO]")
	}
}

func TestTick_AlertLinesFollowMetrics(t *testing.T) {
	m, path := newTestMonitor(t, stubSource{memPercent: 90, cpuPercent: 65})
	m.tick()

	lines := logLines(t, path)
	require.Len(t, lines, 8)
	require.Contains(t, lines[6], "[ERROR] Critical memory: 90.00%")
	require.Contains(t, lines[7], "[WARN] High CPU: 65.00%")
}

func TestEndToEnd_ReportMatchesLog(t *testing.T) {
	// Drive three ticks directly so the counts are exact regardless of
	// scheduler timing: 2 lifecycle lines plus 8 per tick (6 metrics +
	// 2 alerts).
	m, path := newTestMonitor(t, stubSource{memPercent: 90, cpuPercent: 65})
	const ticks = 3
	m.Start(time.Hour) // interval never fires on its own
	for i := 0; i < ticks; i++ {
		m.tick()
	}
	m.Stop()

	lines := logLines(t, path)
	require.Len(t, lines, 2+ticks*8)

	report := GenerateReport(path)
	require.Contains(t, report, "Total Log Entries: "+strconv.Itoa(len(lines)))
	require.Contains(t, report, "Errors: "+strconv.Itoa(ticks))
	require.Contains(t, report, "Warnings: "+strconv.Itoa(ticks))
}

func TestStop_NoTickAfterReturn(t *testing.T) {
	m, path := newTestMonitor(t, stubSource{})
	m.Start(5 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	m.Stop()

	before := len(logLines(t, path))
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, before, len(logLines(t, path)))
}
