package cli

import (
	"fmt"
	"os"

	"github.com/ivanc/salesdesk/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Launch the interactive terminal user interface for salesdesk.`,
	RunE:  launchTUI,
}

func launchTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal; use subcommands instead:")
		fmt.Fprintln(os.Stderr, "  salesdesk clients list")
		fmt.Fprintln(os.Stderr, "  salesdesk products list")
		fmt.Fprintln(os.Stderr, "  salesdesk sales list")
		return fmt.Errorf("cannot start the TUI without a terminal")
	}
	return tui.Run(appInstance)
}
