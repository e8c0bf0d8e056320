package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/conkygen/conkygen/internal/config"
	"github.com/conkygen/conkygen/internal/design"
	"github.com/conkygen/conkygen/internal/ui"
)

// designsCmd lists the design units a machine description can be rendered with.
var designsCmd = &cobra.Command{
	Use:   "designs",
	Short: "List available design units",
	Long: `List the design units that can render a machine description.

Pick one by passing its name as the second argument:
  conkygen machine.yaml clean-stack

Or set a default in your settings file:
  design: clean-stack`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listDesigns()
	},
}

func init() {
	rootCmd.AddCommand(designsCmd)
}

// listDesigns prints every registered design with its description, marking
// the one a bare run would use.
func listDesigns() error {
	registry := design.Builtin()

	defaultName := "clean-stack"
	if settings, err := config.LoadOrDefault(Config()); err == nil && settings.Design != "" {
		defaultName = settings.Design
	}

	nameStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	defaultStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)

	for _, name := range registry.Names() {
		info, _ := registry.Describe(name)

		line := nameStyle.Render(name)
		if name == defaultName {
			line += defaultStyle.Render(" (default)")
		}
		fmt.Println(line)

		if info.Description != "" {
			fmt.Printf("  %s\n", dimStyle.Render(info.Description))
		}
		fmt.Println()
	}

	return nil
}
