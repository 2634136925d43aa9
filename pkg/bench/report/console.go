// Package report renders the benchmark's console output and the optional
// HTML chart of the recorded rounds.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mkraun/timerbench/pkg/bench/results"
	"github.com/mkraun/timerbench/pkg/bench/types"
)

// Banner returns the framed application title.
func Banner(version string) string {
	title := TitleStyle.Render("Timer Resolution Benchmark")
	ver := MutedStyle.Render(version)
	return TitleBox.Render(title + " " + ver)
}

// Section returns a styled section title.
func Section(name string) string {
	return TitleStyle.Render(name)
}

// KV returns a styled "label: value" line.
func KV(label, value string) string {
	return fmt.Sprintf("%s %s", LabelStyle.Render(label+":"), ValueStyle.Render(value))
}

// Params renders the sweep parameters block.
func Params(p types.Params) string {
	lines := []string{
		Section("Benchmark Parameters"),
		KV("Start", fmt.Sprintf("%.4f ms", p.StartValue)),
		KV("Increment", fmt.Sprintf("%.4f ms", p.IncrementValue)),
		KV("End", fmt.Sprintf("%.4f ms", p.EndValue)),
		KV("Samples per round", humanize.Comma(int64(p.SampleValue))),
		KV("Iterations", fmt.Sprintf("%d", p.Iterations())),
	}
	return strings.Join(lines, "\n")
}

// Table renders the recorded rounds as an aligned table.
func Table(records []types.Record) string {
	if len(records) == 0 {
		return MutedStyle.Render("  no valid rounds recorded")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		TableHeaderStyle.Render("RESOLUTION"),
		TableHeaderStyle.Render("   DELTA"),
		TableHeaderStyle.Render("   STDEV")))

	for _, r := range records {
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			ValueStyle.Render(fmt.Sprintf("%7.4f ms", r.ResolutionMs)),
			NumberStyle.Render(fmt.Sprintf("%.4f ms", r.DeltaMs)),
			MutedStyle.Render(fmt.Sprintf("%.4f ms", r.StdevMs))))
	}

	return sb.String()
}

// Optimal renders the framed optimal-result block with summary statistics.
func Optimal(best types.Record, s results.Summary) string {
	lines := []string{
		SuccessStyle.Bold(true).Render("Optimal Timer Resolution: ") +
			NumberStyle.Render(fmt.Sprintf("%.4f ms", best.ResolutionMs)),
		KV("Delta", fmt.Sprintf("%.4f ms", best.DeltaMs)),
		KV("Stdev", fmt.Sprintf("%.4f ms", best.StdevMs)),
		MutedStyle.Render(fmt.Sprintf("across %d rounds: delta mean %.4f ms, stdev %.4f ms, range %.4f-%.4f ms",
			s.Rounds, s.MeanDeltaMs, s.StdevDeltaMs, s.MinDeltaMs, s.MaxDeltaMs)),
	}
	return ResultBox.Render(strings.Join(lines, "\n"))
}

// Warn returns styled warning text.
func Warn(msg string) string {
	return WarningStyle.Render(msg)
}

// Errorf returns styled error text.
func Errorf(format string, args ...interface{}) string {
	return ErrorStyle.Render(fmt.Sprintf(format, args...))
}
