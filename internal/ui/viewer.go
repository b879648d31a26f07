package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gtr/internal/domain"
)

// FailureViewer displays the failed results of the last saved run in an
// interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View shows the failures from a persisted run: a selectable list on the
// left, status/message/diff detail on the right.
func (v *FailureViewer) View(output *domain.RunOutput) error {
	var failures []domain.Result
	for _, r := range output.Results {
		if r.Status.Failed() {
			failures = append(failures, r)
		}
	}

	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, f := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, f.Name), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Failed tests (%d) ", len(failures)))

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Details ")

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		"[cyan]Run from %s — %d failed of %d[white]  (↑/↓ navigate, q quit)",
		output.Meta.Timestamp, output.Meta.Failed, output.Meta.Total,
	))

	showDetails := func(index int) {
		if index < 0 || index >= len(failures) {
			return
		}
		f := failures[index]

		var b strings.Builder
		fmt.Fprintf(&b, "[yellow]Test:[white] %s\n", f.Name)
		fmt.Fprintf(&b, "[yellow]Status:[white] [red]%s[white]\n", f.Status.Label())
		fmt.Fprintf(&b, "[yellow]Duration:[white] %s\n", f.Duration)
		if f.Message != "" {
			fmt.Fprintf(&b, "\n[yellow]Detail:[white]\n%s\n", tview.Escape(f.Message))
		}
		if f.Diff != "" {
			fmt.Fprintf(&b, "\n[yellow]Expected vs Actual diff:[white]\n%s", tview.Escape(f.Diff))
		}
		detailsView.SetText(b.String())
	}

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetails(index)
	})
	showDetails(0)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape,
			event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Rune() == 'j':
			return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
		case event.Rune() == 'k':
			return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
		}
		return event
	})

	return app.SetRoot(layout, true).Run()
}
