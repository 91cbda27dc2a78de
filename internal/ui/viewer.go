package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cpr/internal/config"
	"cpr/internal/domain"
)

// FailureViewer displays the last run's failures in an interactive TUI
type FailureViewer struct {
	config *config.Config
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config) *FailureViewer {
	return &FailureViewer{config: cfg}
}

type failureEntry struct {
	title  string
	detail string
}

// View shows the failed specs and workers of the given run output.
func (fv *FailureViewer) View(output *domain.RunOutput) error {
	entries := buildEntries(output)
	if len(entries) == 0 {
		color.Green("✓ No failures in the last run!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Failures (%s) ", output.Meta.Timestamp))

	detail := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	detail.SetBorder(true).SetTitle(" Details ")

	showDetail := func(index int) {
		if index < 0 || index >= len(entries) {
			return
		}
		detail.SetText(entries[index].detail)
	}

	for i, entry := range entries {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, entry.title), "", 0, nil)
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetail(index)
	})
	showDetail(0)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape,
			event.Rune() == 'q':
			app.Stop()
			return nil
		}
		return event
	})

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(detail, 0, 2, false)

	return app.SetRoot(flex, true).Run()
}

// buildEntries flattens the run output into viewable failure items: one
// per failed spec when known (polling mode), one per failed worker
// otherwise (weighted mode buckets report a single exit status).
func buildEntries(output *domain.RunOutput) []failureEntry {
	var entries []failureEntry
	for _, r := range output.Results {
		if !r.Failed() {
			continue
		}
		if len(r.FailedSpecs) == 0 {
			entries = append(entries, failureEntry{
				title: fmt.Sprintf("worker %d (%s)", r.Worker, r.Status),
				detail: fmt.Sprintf(
					"[red]worker %d[white]\n\nstatus: %s\nexit code: %d\nmode: %s",
					r.Worker, r.Status, r.ExitCode, output.Meta.Mode,
				),
			})
			continue
		}
		for _, spec := range r.FailedSpecs {
			entries = append(entries, failureEntry{
				title: specBase(spec),
				detail: fmt.Sprintf(
					"[red]%s[white]\n\nworker: %d\nstatus: %s\nexit code: %d\nmode: %s",
					spec, r.Worker, r.Status, r.ExitCode, output.Meta.Mode,
				),
			})
		}
	}
	return entries
}

func specBase(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
