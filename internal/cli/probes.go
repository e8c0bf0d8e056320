package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conkygen/conkygen/internal/probe"
	"github.com/conkygen/conkygen/internal/ui"
)

// probesCheck switches the probes command from listing to actually running
// every probe.
var probesCheck bool

// probesCmd lists the external lookups designs can request.
var probesCmd = &cobra.Command{
	Use:   "probes",
	Short: "List external probes and optionally run them",
	Long: `List the external lookups a design can bake into generated output.

Each probe runs at most once per generation. When a probe fails, the design
falls back to a widget that resolves the value at runtime instead.

With --check, every probe runs against this machine and the table shows the
resolved value or the failure:

  conkygen probes --check
  conkygen probes --check --probe-timeout 2s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if probesCheck {
			return checkProbes()
		}
		return listProbes()
	},
}

func init() {
	rootCmd.AddCommand(probesCmd)
	probesCmd.Flags().BoolVar(&probesCheck, "check", false, "run every probe and show the result")
}

// listProbes prints each identity with its description.
func listProbes() error {
	columns := []ui.TableColumn{
		{Title: "PROBE", Width: 14},
		{Title: "DESCRIPTION", Width: 36},
	}

	rows := make([][]string, 0, len(probe.Identities()))
	for _, id := range probe.Identities() {
		rows = append(rows, []string{id.String(), id.Describe()})
	}

	fmt.Println(ui.RenderSimpleTable(columns, rows))
	return nil
}

// checkProbes resolves every identity through a fresh resolver and renders
// the outcomes.
func checkProbes() error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	resolver := newResolver(settings)
	for _, id := range probe.Identities() {
		resolver.Resolve(id)
	}

	fmt.Print(ui.RenderProbeTable(probeRows(resolver.Probed())))
	return nil
}

// probeRows converts resolver outcomes into table rows.
func probeRows(results []probe.Resolved) []ui.ProbeTableRow {
	rows := make([]ui.ProbeTableRow, 0, len(results))
	for _, res := range results {
		row := ui.ProbeTableRow{
			Identity: res.Identity.String(),
			Elapsed:  res.Latency.Round(time.Millisecond).String(),
		}
		if res.OK {
			row.Status = "ok"
			row.Result = res.Value
		} else {
			row.Status = "failed"
			row.Result = res.Code.String()
		}
		rows = append(rows, row)
	}
	return rows
}
