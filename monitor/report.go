package monitor

import (
	"fmt"
	"os"
	"strings"
)

// NoDataMessage is returned when the log file is missing or holds no
// non-blank lines.
const NoDataMessage = "No log data available"

// ReportStats aggregates the log file: entry/error/warning counts plus the
// timestamp tokens bounding the run. EndTime comes from the second-to-last
// non-blank line, which in a normal run is the last metric or alert line
// before the stop line.
type ReportStats struct {
	TotalEntries int
	Errors       int
	Warnings     int
	StartTime    string
	EndTime      string
}

// CollectStats scans the whole log file. ok is false when the file is
// missing or holds no non-blank lines.
func CollectStats(logPath string) (stats ReportStats, ok bool) {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return ReportStats{}, false
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ReportStats{}, false
	}

	stats.TotalEntries = len(lines)
	for _, line := range lines {
		if strings.Contains(line, "[ERROR]") {
			stats.Errors++
		}
		if strings.Contains(line, "[WARN]") {
			stats.Warnings++
		}
	}

	stats.StartTime = firstToken(lines[0])
	endLine := lines[0]
	if len(lines) >= 2 {
		endLine = lines[len(lines)-2]
	}
	stats.EndTime = firstToken(endLine)
	return stats, true
}

// GenerateReport reads the whole log file and renders it as a bordered
// summary block. It re-scans the file on every call and is meant to run
// once, at shutdown, after the monitor has stopped.
func GenerateReport(logPath string) string {
	stats, ok := CollectStats(logPath)
	if !ok {
		return NoDataMessage
	}

	border := strings.Repeat("=", 40)
	var b strings.Builder
	fmt.Fprintln(&b, border)
	fmt.Fprintln(&b, "         SYSTEM MONITOR REPORT")
	fmt.Fprintln(&b, border)
	fmt.Fprintf(&b, "Total Log Entries: %d\n", stats.TotalEntries)
	fmt.Fprintf(&b, "Errors: %d\n", stats.Errors)
	fmt.Fprintf(&b, "Warnings: %d\n", stats.Warnings)
	fmt.Fprintf(&b, "Start Time: %s\n", stats.StartTime)
	fmt.Fprintf(&b, "End Time: %s\n", stats.EndTime)
	fmt.Fprintln(&b, border)
	return b.String()
}

// WriteReport renders the report and overwrites reportPath with it.
func WriteReport(logPath, reportPath string) error {
	return os.WriteFile(reportPath, []byte(GenerateReport(logPath)), 0644)
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
