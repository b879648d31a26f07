package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows benchmark progress on stderr while the per-test timing
// lines go to stdout. Color enablement is fixed at construction, matching
// the Reporter.
type ProgressBar struct {
	bar *progressbar.ProgressBar

	cyan  *color.Color
	green *color.Color
	red   *color.Color
}

// NewProgressBar creates a new progress bar for count test cases
func NewProgressBar(count int, colorEnabled bool) *ProgressBar {
	p := &ProgressBar{
		cyan:  color.New(color.FgCyan),
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.cyan, p.green, p.red} {
		if colorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	p.bar = progressbar.NewOptions(count,
		progressbar.OptionSetDescription(p.describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        p.cyan.Sprint("█"),
			SaucerHead:    p.cyan.Sprint("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(colorEnabled),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return p
}

// Update advances the bar with completed and failed counts
func (p *ProgressBar) Update(completedCount, failCount int) {
	p.bar.Set(completedCount + failCount)
	p.bar.Describe(p.describe(completedCount, failCount))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

func (p *ProgressBar) describe(completedCount, failCount int) string {
	return p.cyan.Sprint("Benchmarking: ") +
		p.green.Sprintf("[completed: %d", completedCount) +
		" | " +
		p.red.Sprintf("failed: %d]", failCount)
}
