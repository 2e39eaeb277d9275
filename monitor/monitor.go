package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/Rafiki81/sysmonitor/collector"
	"github.com/Rafiki81/sysmonitor/logger"
)

// Source supplies metric snapshots for one tick. *collector.Collector
// implements it; tests substitute fixed-value stubs.
type Source interface {
	Memory() collector.MemorySnapshot
	CPU() collector.CPUSnapshot
	Process() collector.ProcessSnapshot
	System() collector.SystemSnapshot
	Network() collector.NetworkSnapshot
}

// Monitor owns the recurring collection timer. It is either idle or running;
// Start and Stop are idempotent. Ticks are consumed by a single goroutine,
// so two ticks never run concurrently and the log keeps a single writer.
type Monitor struct {
	mu      sync.Mutex
	running bool

	log     *logger.Logger
	source  Source
	onFatal func(error)

	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewMonitor creates an idle monitor writing through log and collecting
// from source.
func NewMonitor(log *logger.Logger, source Source) *Monitor {
	return &Monitor{log: log, source: source}
}

// OnAppendFailure registers a handler for log append errors. Durable logging
// is the monitor's contract, so the handler is expected to terminate the
// process; it must not call Stop from within. Set before Start.
func (m *Monitor) OnAppendFailure(fn func(error)) {
	m.onFatal = fn
}

func (m *Monitor) append(message string, level logger.Level) {
	if err := m.log.Log(message, level); err != nil && m.onFatal != nil {
		m.onFatal(err)
	}
}

func (m *Monitor) appendInfo(message string) {
	m.append(message, logger.LevelInfo)
}

// Running reports whether the timer is armed.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Start arms the recurring timer. No-op when already running.
func (m *Monitor) Start(interval time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.running = true

	m.append(fmt.Sprintf("Monitoring started (interval: %dms)", interval.Milliseconds()), logger.LevelInfo)

	m.ticker = time.NewTicker(interval)
	m.done = make(chan struct{})
	m.wg.Add(1)
	go m.loop(m.ticker, m.done)
}

func (m *Monitor) loop(ticker *time.Ticker, done chan struct{}) {
	defer m.wg.Done()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			m.tick()
		}
	}
}

// Stop disarms the timer and waits for any in-flight tick to finish, so no
// tick can write after Stop returns. No-op when already idle.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.ticker.Stop()
	close(m.done)
	m.mu.Unlock()

	m.wg.Wait()
	m.append("Monitoring stopped", logger.LevelInfo)
}

// tick runs one collect-log-alert cycle: six INFO lines in fixed order, then
// any alert lines.
func (m *Monitor) tick() {
	memory := m.source.Memory()
	cpu := m.source.CPU()
	proc := m.source.Process()
	system := m.source.System()
	network := m.source.Network()

	m.appendInfo(fmt.Sprintf("Memory - Total: %s, Free: %s, Used: %s (%.2f%%)",
		memory.TotalHuman, memory.FreeHuman, memory.UsedHuman, memory.UsedPercent))
	m.appendInfo(fmt.Sprintf("CPU - Cores: %d, Model: %s, Load Avg: %.2f, %.2f, %.2f",
		cpu.Cores, cpu.ModelName, cpu.LoadAvg[0], cpu.LoadAvg[1], cpu.LoadAvg[2]))
	m.appendInfo(fmt.Sprintf("CPU Usage: %.2f%%", cpu.UsagePercent))
	m.appendInfo(fmt.Sprintf("Process - Memory: %s, Uptime: %.2fs",
		proc.MemoryHuman, proc.UptimeSeconds))
	m.appendInfo(fmt.Sprintf("System - Host: %s, Platform: %s, Arch: %s",
		system.Hostname, system.Platform, system.Arch))
	m.appendInfo(fmt.Sprintf("Network - Interfaces: %d", network.InterfaceCount))

	for _, alert := range EvaluateAlerts(memory.UsedPercent, cpu.UsagePercent) {
		m.append(alert.Message, alert.Level)
	}
}
