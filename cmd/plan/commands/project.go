package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/semillero-api/cmd/plan/output"
	"github.com/jhoicas/semillero-api/internal/application/project"
	"github.com/jhoicas/semillero-api/pkg/money"
)

var jsonOutput bool

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Corre el motor y muestra indicadores y etapas omitidas",
	Example: `  plan project -f panaderia.json
  plan project -f panaderia.json --json`,
	RunE: runProject,
}

func init() {
	projectCmd.Flags().BoolVar(&jsonOutput, "json", false, "salida JSON (misma forma que GET /api/projects/{id}/projection)")
}

func runProject(cmd *cobra.Command, _ []string) error {
	log := newLogger()

	snap, err := loadSnapshot(snapshotFile)
	if err != nil {
		return err
	}
	p, proj, err := project.Simulate(snap)
	if err != nil {
		return err
	}
	for _, s := range proj.SkippedStages {
		log.Debug().Str("stage", s.Stage).Str("reason", s.Reason).Msg("etapa omitida")
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(proj)
	}

	out := output.New(cmd.OutOrStdout(), money.NewFormatter(currencySymbol))
	out.Projection(p.Name(), proj)
	return nil
}
