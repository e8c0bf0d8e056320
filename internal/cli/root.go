package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conkygen/conkygen/internal/config"
	"github.com/conkygen/conkygen/internal/design"
	"github.com/conkygen/conkygen/internal/errors"
	"github.com/conkygen/conkygen/internal/expr"
	"github.com/conkygen/conkygen/internal/loader"
	"github.com/conkygen/conkygen/internal/logger"
	"github.com/conkygen/conkygen/internal/model"
	"github.com/conkygen/conkygen/internal/probe"
	"github.com/conkygen/conkygen/internal/ui"
)

// Global flags available on every command.
var (
	cfgFile          string
	colorFlag        string
	probeTimeoutFlag string
	quietFlag        bool
)

// outputFlag redirects the generated configuration to a file.
var outputFlag string

// rootCmd generates Conky configuration directly, without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "conkygen <data-file> [design]",
	Short: "Generate Conky configuration from a machine description",
	Long: `Generate a complete Conky configuration from a declarative description
of a machine's monitorable devices.

The data file (YAML or JSON) lists the machine's disks, network interfaces,
and sensors. A design unit turns that description into widget text, and the
result is printed to stdout ready to save as a conky.conf.

Examples:
  conkygen machine.yaml
  conkygen machine.yaml clean-stack
  conkygen machine.yaml --output ~/.config/conky/conky.conf
  conkygen machine.json plain > conky.conf`,
	Args: cobra.MaximumNArgs(2),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.ConfigureColors(colorFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		designArg := ""
		if len(args) == 2 {
			designArg = args[1]
		}
		return generate(args[0], designArg, outputFlag)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: .conkygen.yaml, then ~/.config/conkygen/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "colorize status output: auto, always, or never")
	rootCmd.PersistentFlags().StringVar(&probeTimeoutFlag, "probe-timeout", "", "per-probe timeout (e.g., 5s, 500ms)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress status messages on stderr")

	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write the generated configuration to a file instead of stdout")
}

// Config returns the value of the --config flag.
func Config() string {
	return cfgFile
}

// Execute runs the root command. Errors go to stderr and exit non-zero, so
// a failed run never leaves partial configuration on stdout.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError writes a structured error as-is and wraps anything else in the
// same failure shape.
func printError(err error) {
	var structured *errors.Error
	if stderrors.As(err, &structured) {
		fmt.Fprintln(os.Stderr, structured.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "✗ %v\n", err)
}

// generate runs the full pipeline: settings, data file, design lookup, a
// fresh resolver, render, output.
func generate(dataFile, designArg, outputPath string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	raw, err := loader.LoadRaw(dataFile)
	if err != nil {
		return err
	}

	env, err := model.Parse(raw)
	if err != nil {
		return invalidDataFile(dataFile, err)
	}

	registry := design.Builtin()
	name := designName(designArg, settings)
	unit, err := registry.Lookup(name)
	if err != nil {
		return err
	}
	info, _ := registry.Describe(name)

	resolver := newResolver(settings)
	factory := expr.NewFactory(env, resolver)

	lines, err := design.Run(env, unit, factory, info.Document)
	if err != nil {
		return err
	}

	warnFailedProbes(resolver)
	return writeOutput(outputPath, lines)
}

// loadSettings loads and validates settings, applying flag overrides.
func loadSettings() (*config.Settings, error) {
	settings, err := config.LoadOrDefault(Config())
	if err != nil {
		return nil, err
	}

	if probeTimeoutFlag != "" {
		timeout, err := ParseProbeTimeout(probeTimeoutFlag)
		if err != nil {
			return nil, err
		}
		settings.ProbeTimeout = timeout
	}

	if err := config.Validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// designName picks the design to render: explicit argument first, then the
// settings file, then the shipped default.
func designName(arg string, settings *config.Settings) string {
	if arg != "" {
		return arg
	}
	if settings.Design != "" {
		return settings.Design
	}
	return "clean-stack"
}

// newResolver builds the per-run resolver. Each invocation gets its own, so
// probe results never leak between runs.
func newResolver(settings *config.Settings) *probe.Resolver {
	prober := probe.NewSystemProber()
	if settings.ExternalIPURL != "" {
		prober.ExternalIPURL = settings.ExternalIPURL
	}

	resolver := probe.NewResolver(prober, settings.ProbeTimeout)
	resolver.SetLogger(logger.Default())
	return resolver
}

// invalidDataFile turns a parse failure into the user-facing error, keeping
// the exact path of the first problem in the cause.
func invalidDataFile(dataFile string, err error) error {
	var verr *model.ValidationError
	if stderrors.As(err, &verr) {
		return errors.WrapWithCode(err, errors.ErrValidation,
			fmt.Sprintf("%s doesn't describe a valid machine", dataFile),
			fmt.Sprintf("Fix '%s' in the data file, or run 'conkygen validate %s' for the full summary", verr.Path, dataFile))
	}
	return err
}

// warnFailedProbes reports probes that fell back, so a missing value in the
// output is never silent.
func warnFailedProbes(resolver *probe.Resolver) {
	if quietFlag {
		return
	}
	for _, res := range resolver.Probed() {
		if !res.OK {
			ui.PrintWarning(fmt.Sprintf("Probe '%s' failed (%s) - the widget falls back to resolving it at runtime", res.Identity, res.Code))
		}
	}
}

// writeOutput prints the generated lines to stdout, or writes them to the
// --output file. Output paths may use ~ and the ${USER}/${HOME} variables.
func writeOutput(path string, lines []string) error {
	text := strings.Join(lines, "\n") + "\n"

	if path == "" {
		fmt.Print(text)
		return nil
	}

	expanded := config.ExpandTilde(config.Expand(path))
	if err := os.WriteFile(expanded, []byte(text), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot write output file: "+path,
			"Check that the directory exists and is writable")
	}

	if !quietFlag {
		fmt.Fprintf(os.Stderr, "%s Wrote %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), expanded)
	}
	return nil
}
