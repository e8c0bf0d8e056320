package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conkygen/conkygen/internal/errors"
	"github.com/conkygen/conkygen/internal/loader"
	"github.com/conkygen/conkygen/internal/model"
	"github.com/conkygen/conkygen/internal/ui"
	"github.com/conkygen/conkygen/internal/util"
)

// validateCmd checks a machine description without generating anything.
var validateCmd = &cobra.Command{
	Use:   "validate <data-file>",
	Short: "Check a machine description without generating output",
	Long: `Parse and validate a machine description, then print a summary of
what it declares.

Validation stops at the first problem and reports its exact location, so
a failing file points straight at the line to fix.

Examples:
  conkygen validate machine.yaml
  conkygen validate machine.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateDataFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateDataFile loads and parses the data file, printing a device summary
// on success.
func validateDataFile(path string) error {
	raw, err := loader.LoadRaw(path)
	if err != nil {
		return err
	}

	env, err := model.Parse(raw)
	if err != nil {
		var verr *model.ValidationError
		if stderrors.As(err, &verr) {
			return errors.WrapWithCode(err, errors.ErrValidation,
				fmt.Sprintf("%s doesn't describe a valid machine", path),
				fmt.Sprintf("Fix '%s' and run validate again", verr.Path))
		}
		return err
	}

	printEnvironmentSummary(path, env)
	return nil
}

// printEnvironmentSummary shows what the parsed Environment declares.
func printEnvironmentSummary(path string, env *model.Environment) {
	fmt.Printf("%s %s is valid\n\n", ui.SuccessStyle().Render(ui.SymbolSuccess), path)

	geo := env.Geometry()
	fmt.Printf("Machine: %s\n", env.Name())
	fmt.Printf("Geometry: %s, %dx%d minimum, refresh every %ds\n\n",
		geo.Placement, geo.WidthMin, geo.HeightMin, geo.RefreshInterval)

	devices := env.Devices()
	if len(devices) == 0 {
		fmt.Println("No devices declared. Designs that render per-device sections will skip them.")
		return
	}
	fmt.Printf("%d %s declared\n\n", len(devices), util.Pluralize(len(devices), "device", "devices"))

	rows := make([]ui.FindingRow, 0, len(devices))
	for _, dev := range devices {
		rows = append(rows, ui.FindingRow{
			Status:  "pass",
			Group:   fmt.Sprintf("%s (%s)", dev.Label(), dev.Kind()),
			Message: describeDevice(dev),
		})
	}
	fmt.Print(ui.RenderFindingsTable(rows))
}

// describeDevice lists the declared attributes a device carries.
func describeDevice(dev model.Device) string {
	var parts []string
	for _, spec := range dev.Kind().Specs() {
		if v, ok := dev.Attr(spec.Name); ok {
			parts = append(parts, fmt.Sprintf("%s=%s", spec.Name, model.Text(v)))
		}
	}
	return util.JoinOrDefault(parts, "no declared attributes")
}
