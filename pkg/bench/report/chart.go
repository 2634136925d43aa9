package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mkraun/timerbench/pkg/bench/types"
)

// WriteChart renders an HTML line chart of delta and standard deviation
// against the requested resolution.
func WriteChart(records []types.Record, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to chart")
	}

	xs := make([]string, len(records))
	deltas := make([]opts.LineData, len(records))
	stdevs := make([]opts.LineData, len(records))
	for i, r := range records {
		xs[i] = fmt.Sprintf("%.4f", r.ResolutionMs)
		deltas[i] = opts.LineData{Value: r.DeltaMs}
		stdevs[i] = opts.LineData{Value: r.StdevMs}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Timer Resolution Benchmark",
			Theme:     "dark",
			Width:     "1100px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Scheduling jitter by requested timer resolution",
			Subtitle: fmt.Sprintf("%d rounds", len(records)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "requested resolution (ms)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(xs).
		AddSeries("delta", deltas).
		AddSeries("stdev", stdevs).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
