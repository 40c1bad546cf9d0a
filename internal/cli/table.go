package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"

	"keyshift/internal/engine"
	"keyshift/internal/remap"
)

// TableCmd prints the remap table.
type TableCmd struct{}

// Run is called by Kong when the table command is executed.
func (c *TableCmd) Run() error {
	cfg := engine.DefaultConfig()
	noColor := color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))
	return renderTable(os.Stdout, cfg, noColor)
}

func renderTable(w io.Writer, cfg engine.Config, noColor bool) error {
	bold := color.New(color.Bold)
	dim := color.New(color.FgCyan)
	if noColor {
		bold.DisableColor()
		dim.DisableColor()
	}

	bold.Fprintf(w, "Hold %s (sent as %s) to remap:\n\n", cfg.Toggle, cfg.Modifier)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tSENDS\t")
	for _, trigger := range cfg.Table.Triggers() {
		actions, _ := cfg.Table.Lookup(trigger)
		fmt.Fprintf(tw, "%s\t%s\t\n", trigger, describe(actions))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	dim.Fprintf(w, "\n%d keys mapped\n", cfg.Table.Len())
	return nil
}

// describe renders a single follow action as its key and a sequence as
// its strokes.
func describe(actions []remap.Action) string {
	if len(actions) == 1 && actions[0].State == remap.FollowExisting {
		return actions[0].Code.String()
	}
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}
