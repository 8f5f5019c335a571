package observability

import (
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthReport is served on /healthz.
type HealthReport struct {
	Status        string  `json:"status"`
	PID           int32   `json:"pid"`
	Uptime        string  `json:"uptime"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float32 `json:"memory_percent"`
}

// Health reads the current process statistics.
type Health struct {
	log     *slog.Logger
	started time.Time
	pid     int32
}

func NewHealth(log *slog.Logger) *Health {
	return &Health{log: log, started: time.Now(), pid: int32(os.Getpid())}
}

// Report never fails: stats that cannot be read are left at zero.
func (h *Health) Report() HealthReport {
	report := HealthReport{
		Status: "ok",
		PID:    h.pid,
		Uptime: time.Since(h.started).Round(time.Second).String(),
	}

	p, err := process.NewProcess(h.pid)
	if err != nil {
		h.log.Debug("Error while retrieving process", "pid", h.pid, "err", err)
		return report
	}
	if cpu, err := p.CPUPercent(); err == nil {
		report.CPUPercent = cpu
	} else {
		h.log.Debug("Error while finding process cpu usage", "err", err)
	}
	if ram, err := p.MemoryPercent(); err == nil {
		report.MemoryPercent = ram
	} else {
		h.log.Debug("Error while finding process ram usage", "err", err)
	}
	return report
}
