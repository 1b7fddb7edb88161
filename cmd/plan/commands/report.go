package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/semillero-api/cmd/plan/output"
	"github.com/jhoicas/semillero-api/internal/application/project"
	"github.com/jhoicas/semillero-api/internal/domain"
	"github.com/jhoicas/semillero-api/internal/infrastructure/pdf"
	"github.com/jhoicas/semillero-api/pkg/money"
)

var (
	reportOutput string
	reportAuthor string
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Short:   "Genera el PDF del plan de negocio",
	Example: `  plan report -f panaderia.json -o plan.pdf`,
	RunE:    runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "archivo PDF de salida (por defecto plan_<nombre>.pdf)")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "Programa Semillero", "autor del documento")
}

func runReport(cmd *cobra.Command, _ []string) error {
	log := newLogger()

	snap, err := loadSnapshot(snapshotFile)
	if err != nil {
		return err
	}
	p, proj, err := project.Simulate(snap)
	if err != nil {
		return err
	}
	out := output.New(cmd.OutOrStdout(), money.NewFormatter(currencySymbol))
	if !proj.Complete {
		out.Skipped(proj.SkippedStages)
		return domain.ErrIncompleteProjection
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pdfBytes, err := pdf.NewMarotoReportGenerator(reportAuthor, currencySymbol).GenerateProjectPDF(ctx, p)
	if err != nil {
		return fmt.Errorf("pdf: generación fallida: %w", err)
	}

	path := reportOutput
	if path == "" {
		path = project.ReportFilename(p)
	}
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	log.Info().Str("file", path).Int("bytes", len(pdfBytes)).Msg("reporte generado")
	out.Success("PDF generado en %s", path)
	return nil
}
