package utils

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v4/cpu"
)

var registerSystemMetrics sync.Once

// GetCPUUsage returns the CPU usage since the previous call as a percentage.
// It does not block.
func GetCPUUsage() float64 {
	percentage, err := cpu.Percent(0, false)
	if err != nil || len(percentage) == 0 {
		TrackError("system", "cpu_usage")
		return 0
	}
	return percentage[0]
}

// RegisterSystemMetrics exposes host metrics sampled on every scrape.
func RegisterSystemMetrics(reg prometheus.Registerer) {
	registerSystemMetrics.Do(func() {
		reg.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "system_cpu_usage_percent",
				Help: "Host CPU usage since the previous scrape",
			},
			GetCPUUsage,
		))
	})
}
