// Package ui implements the interactive constraint inspector, a small
// terminal front end over the version grammar.
package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mwaldt/packwise/pkg/core/packages/version"
	"github.com/mwaldt/packwise/pkg/ui/widgets"
)

// Inspector is a live console for the version grammar: it parses whatever
// is typed and renders normalization, stability and the constraint tree.
type Inspector struct {
	app    *tview.Application
	input  *tview.InputField
	output *tview.TextView
	quit   *tview.Button
}

// NewInspector creates the inspector and wires its layout.
func NewInspector() *Inspector {
	i := &Inspector{app: tview.NewApplication()}

	i.output = tview.NewTextView().SetDynamicColors(true)
	i.output.SetBorder(true).SetTitle(" Result ")
	i.output.SetText(Describe(""))

	i.input = tview.NewInputField().
		SetLabel("Version or constraint: ").
		SetFieldWidth(0)
	i.input.SetPlaceholder("~1.2 | >=2.0,<3.0").
		SetFieldTextColor(tcell.ColorBlack).
		SetPlaceholderTextColor(tcell.ColorGray)
	i.input.SetFocusFunc(func() {
		i.input.SetFieldBackgroundColor(tcell.ColorBlue)
	})
	i.input.SetBlurFunc(func() {
		i.input.SetFieldBackgroundColor(tcell.ColorSlateGray)
	})
	i.input.SetChangedFunc(func(text string) {
		i.output.SetText(Describe(text))
	})
	i.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			i.app.Stop()
		}
	})

	i.quit = tview.NewButton("Quit").SetSelectedFunc(func() {
		i.app.Stop()
	})
	widgets.DefaultStyleButton(i.quit)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(i.input, 1, 0, true).
		AddItem(i.output, 0, 1, false).
		AddItem(i.quit, 1, 0, false)
	layout.SetBorderPadding(1, 1, 1, 1)

	i.app.SetRoot(layout, true)
	return i
}

// Run blocks until the inspector is closed.
func (i *Inspector) Run() error {
	return i.app.Run()
}

// Describe renders the normalization, stability and constraint parse of a
// single input line using tview color markup. It is a pure formatting
// helper and needs no terminal.
func Describe(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "[gray]Type a version (1.0.0-beta2, dev-main) or a constraint (~1.2, >=1.0,<2.0 | 3.x).[-]"
	}

	var b strings.Builder

	if normalized, err := version.Normalize(text); err == nil {
		fmt.Fprintf(&b, "[yellow]Canonical:[-] %s\n", tview.Escape(normalized))
		fmt.Fprintf(&b, "[yellow]Stability:[-] %s\n", version.ParseStability(text))
	} else {
		fmt.Fprintf(&b, "[gray]Not a single version: %s[-]\n", tview.Escape(err.Error()))
	}

	if constraint, err := version.ParseConstraints(text); err == nil {
		fmt.Fprintf(&b, "[yellow]Constraint:[-] %s\n", tview.Escape(constraint.String()))
		fmt.Fprintf(&b, "[yellow]Pretty:[-] %s\n", tview.Escape(constraint.Pretty()))
	} else {
		fmt.Fprintf(&b, "[red]Constraint error: %s[-]\n", tview.Escape(err.Error()))
	}

	return strings.TrimRight(b.String(), "\n")
}
