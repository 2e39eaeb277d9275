package monitor

import (
	"fmt"

	"github.com/Rafiki81/sysmonitor/logger"
)

// Fixed alert thresholds, exclusive lower bounds: a value must be strictly
// greater to trigger.
const (
	MemoryWarningPercent  = 70.0
	MemoryCriticalPercent = 85.0
	CPUWarningPercent     = 60.0
	CPUCriticalPercent    = 80.0
)

// Alert is one threshold violation: the log level it maps to plus a message.
type Alert struct {
	Level   logger.Level
	Message string
}

// EvaluateAlerts maps memory and CPU usage percentages to alerts. Memory and
// CPU are checked independently; there is no deduplication or cooldown, so
// an alert fires on every evaluation where the condition holds.
func EvaluateAlerts(memPercent, cpuPercent float64) []Alert {
	var alerts []Alert

	if memPercent > MemoryCriticalPercent {
		alerts = append(alerts, Alert{
			Level:   logger.LevelError,
			Message: fmt.Sprintf("Critical memory: %.2f%%", memPercent),
		})
	} else if memPercent > MemoryWarningPercent {
		alerts = append(alerts, Alert{
			Level:   logger.LevelWarn,
			Message: fmt.Sprintf("High memory: %.2f%%", memPercent),
		})
	}

	if cpuPercent > CPUCriticalPercent {
		alerts = append(alerts, Alert{
			Level:   logger.LevelError,
			Message: fmt.Sprintf("Critical CPU: %.2f%%", cpuPercent),
		})
	} else if cpuPercent > CPUWarningPercent {
		alerts = append(alerts, Alert{
			Level:   logger.LevelWarn,
			Message: fmt.Sprintf("High CPU: %.2f%%", cpuPercent),
		})
	}

	return alerts
}
