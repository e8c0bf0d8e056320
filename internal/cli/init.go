package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conkygen/conkygen/internal/errors"
	"github.com/conkygen/conkygen/internal/model"
	"github.com/conkygen/conkygen/internal/ui"
)

// DataFileName is the default name for a starter machine description.
const DataFileName = "machine.yaml"

// InitOptions holds options for the init command.
type InitOptions struct {
	Name           string // Pre-specified machine name
	Path           string // Where to write the data file
	Overwrite      bool   // Overwrite an existing data file without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// starterDevice is one device entry in the generated starter file. Optional
// fields stay omitempty so each entry carries only its kind's attributes.
type starterDevice struct {
	Kind      string `yaml:"kind"`
	Label     string `yaml:"label"`
	MountPath string `yaml:"mount_path,omitempty"`
	Name      string `yaml:"name,omitempty"`
	Source    string `yaml:"source,omitempty"`
}

// starterGeometry carries the geometry knobs worth surfacing in a starter
// file. The rest fall back to their defaults.
type starterGeometry struct {
	Placement string `yaml:"placement"`
	WidthMin  int    `yaml:"width_min"`
}

// starterFile is the full starter data file.
type starterFile struct {
	Name     string          `yaml:"name"`
	Devices  []starterDevice `yaml:"devices"`
	Geometry starterGeometry `yaml:"geometry"`
}

// Init creates a starter machine description file.
func Init(opts InitOptions) error {
	path := opts.Path
	if path == "" {
		path = DataFileName
	}

	// Check for an existing data file
	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Data file already exists: %s", path),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("'%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect the machine name and starter devices
	name := opts.Name
	var kinds []string

	if opts.NonInteractive {
		if name == "" {
			name = defaultMachineName()
		}
		kinds = starterKinds()
	} else {
		ui.PrintHeader(ui.HeaderInfo{
			Version:  formatVersion(GetVersion()),
			Tagline:  "Conky configuration generator",
			DataFile: path,
		})

		var selected []string

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Machine name").
					Description("Names the environment in the data file (blank uses this machine's host name)").
					Placeholder(defaultMachineName()).
					Value(&name),
			),
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title("Starter devices").
					Description("Each selected kind gets an example entry to edit").
					Options(
						huh.NewOption("disk (root filesystem)", model.KindDisk.String()).Selected(true),
						huh.NewOption("network interface", model.KindNetworkInterface.String()).Selected(true),
						huh.NewOption("sensor (CPU)", model.KindSensor.String()).Selected(true),
					).
					Value(&selected),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}

		if name == "" {
			name = defaultMachineName()
		}
		kinds = selected
	}

	// Marshal the starter data
	data, err := yaml.Marshal(starterData(name, kinds))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate data file",
			"This shouldn't happen - please report this bug")
	}

	header := `# conkygen machine description
# Run 'conkygen ` + path + `' to generate Conky configuration
# Devices listed here become widget sections; edit them to match your hardware

`
	content := header + string(data)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write data file: %s", path),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, path)
	fmt.Println("Next steps:")
	fmt.Printf("  conkygen validate %s   - Check the description\n", path)
	fmt.Printf("  conkygen %s            - Generate configuration\n", path)
	fmt.Println("  conkygen designs              - See available designs")

	return nil
}

// defaultMachineName uses the host name when the user doesn't pick one.
func defaultMachineName() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	return "workstation"
}

// starterKinds are the device kinds a non-interactive init writes.
func starterKinds() []string {
	return []string{
		model.KindDisk.String(),
		model.KindNetworkInterface.String(),
		model.KindSensor.String(),
	}
}

// starterData builds the starter file contents for the chosen device kinds.
// The example values parse cleanly, so the file validates before a single
// edit.
func starterData(name string, kinds []string) starterFile {
	data := starterFile{
		Name: name,
		Geometry: starterGeometry{
			Placement: "top_left",
			WidthMin:  200,
		},
	}

	for _, k := range kinds {
		switch model.Kind(k) {
		case model.KindDisk:
			data.Devices = append(data.Devices, starterDevice{
				Kind:      k,
				Label:     "root",
				MountPath: "/",
			})
		case model.KindNetworkInterface:
			data.Devices = append(data.Devices, starterDevice{
				Kind:  k,
				Label: "wired",
				Name:  "eth0",
			})
		case model.KindSensor:
			data.Devices = append(data.Devices, starterDevice{
				Kind:   k,
				Label:  "cpu",
				Source: "coretemp",
			})
		}
	}

	return data
}

// Command-specific flags for init.
var (
	initNameFlag       string
	initOutputFlag     string
	initForce          bool
	initNonInteractive bool
)

// initCmd creates a starter machine description.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter machine description",
	Long: `Initialize a new machine description file.

Creates a data file in the current directory with example devices to edit.
Guides you through the machine name and starter devices with interactive
prompts, or writes defaults with --non-interactive.

Examples:
  conkygen init
  conkygen init --non-interactive
  conkygen init --name workstation --output ~/machines/desk.yaml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Name:           initNameFlag,
			Path:           initOutputFlag,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initNameFlag, "name", "", "machine name (default: this machine's host name)")
	initCmd.Flags().StringVarP(&initOutputFlag, "output", "o", "", "where to write the data file (default: machine.yaml)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing data file")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and write defaults")
}
