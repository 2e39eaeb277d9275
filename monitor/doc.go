// Package monitor runs the periodic collect-log-alert loop and produces the
// shutdown summary report.
//
// It includes:
//   - The monitoring loop state machine ([Monitor])
//   - Fixed-threshold alert evaluation ([EvaluateAlerts])
//   - Log aggregation into a summary report ([GenerateReport], [WriteReport])
//
// The Monitor is safe for concurrent use; ticks are serialized on a single
// goroutine so the log file keeps exactly one writer.
package monitor
