package menu

import (
	"context"
	"fmt"

	"kitchen-companion/internal/metrics"
)

// statsScreen shows model usage for the last week plus a process health
// snapshot.
func (m *Menu) statsScreen(ctx context.Context) {
	m.title("Usage and Health")

	if m.metrics == nil {
		m.muted("Usage tracking needs the sqlite backend.")
	} else {
		usage, err := m.metrics.GetDailyUsage(ctx, 7)
		if err != nil {
			m.fail(err)
		} else if len(usage) == 0 {
			m.muted("No model calls recorded in the last 7 days.")
		} else {
			var lines []string
			for _, day := range usage {
				lines = append(lines, fmt.Sprintf("%s  %d calls, %d prompt / %d completion tokens",
					day.Date, day.TotalCalls, day.TotalPrompt, day.TotalCompletion))
			}
			m.panel(lines)
		}
	}

	health := metrics.GetSysHealth(m.dataDir)
	m.panel([]string{
		fmt.Sprintf("Memory: %d MB in use, %d MB from OS", health.AllocMB, health.SysMB),
		fmt.Sprintf("GC cycles: %d, goroutines: %d", health.NumGC, health.Goroutines),
		"Data directory: " + health.DataSize,
	})
}
