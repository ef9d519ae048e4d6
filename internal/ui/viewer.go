package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"cotb/internal/domain"
)

// FailureViewer displays failed test cases in an interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View displays the failed test cases of the last run
func (v *FailureViewer) View(failures []domain.TestCase) error {
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Failed Cases (%d) ", len(failures)))

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle(" Details ")

	showDetails := func(index int) {
		if index < 0 || index >= len(failures) {
			return
		}
		tc := failures[index]
		var b strings.Builder
		fmt.Fprintf(&b, "[yellow]Test:[white] %s\n", tc.Name)
		fmt.Fprintf(&b, "[yellow]Class:[white] %s\n", tc.Classname)
		fmt.Fprintf(&b, "[yellow]Result:[red] %s[white]\n", tc.Result)
		if tc.Time != nil {
			fmt.Fprintf(&b, "[yellow]Time:[white] %.3fs\n", *tc.Time)
		}
		if tc.Message != "" {
			fmt.Fprintf(&b, "\n[yellow]Message:[white]\n%s\n", tview.Escape(tc.Message))
		}
		if tc.Details != "" {
			fmt.Fprintf(&b, "\n[yellow]Output:[white]\n%s\n", tview.Escape(tc.Details))
		}
		details.SetText(b.String())
		details.ScrollToBeginning()
	}

	for i, tc := range failures {
		name := tc.Name
		if name == "" {
			name = fmt.Sprintf("Case %d", i+1)
		}
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, name), "", 0, nil)
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetails(index)
	})
	showDetails(0)

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			app.Stop()
			return nil
		case tcell.KeyTab:
			if list.HasFocus() {
				app.SetFocus(details)
			} else {
				app.SetFocus(list)
			}
			return nil
		}
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
