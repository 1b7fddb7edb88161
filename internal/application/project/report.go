package project

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/semillero-api/internal/domain"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/internal/domain/repository"
	"github.com/jhoicas/semillero-api/pkg/logger"
)

// ReportUseCase genera el PDF del plan de negocio.
type ReportUseCase struct {
	repo      repository.ProjectRepository
	generator ReportGenerator
	log       *logger.Logger
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(repo repository.ProjectRepository, generator ReportGenerator, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{repo: repo, generator: generator, log: log.Component("report")}
}

var unsafeFilename = regexp.MustCompile(`[^a-z0-9]+`)

// DownloadReportPDF carga el proyecto, verifica que la proyección esté completa y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)    si todo sale bien.
//   - domain.ErrNotFound           si el proyecto no existe.
//   - domain.ErrForbidden          si el actor no puede leerlo.
//   - domain.ErrIncompleteProjection si aún no hay indicadores financieros.
func (uc *ReportUseCase) DownloadReportPDF(ctx context.Context, actor Actor, id string) (pdfBytes []byte, filename string, err error) {
	p, err := loadProject(ctx, uc.repo, actor, id, false)
	if err != nil {
		return nil, "", err
	}
	if p.CostStructure.FinancialIndicators == nil || p.CostStructure.InvestmentRecoveryTable == nil {
		return nil, "", domain.ErrIncompleteProjection
	}

	pdfBytes, err = uc.generator.GenerateProjectPDF(ctx, p)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	uc.log.Info().Str("project_id", p.ID).Int("bytes", len(pdfBytes)).Msg("reporte generado")

	return pdfBytes, ReportFilename(p), nil
}

// ReportFilename nombre del PDF de descarga: plan_<nombre sin tildes>.pdf, o el ID si el nombre no deja nada.
func ReportFilename(p *entity.Project) string {
	slug := reportSlug(p.Name())
	if slug == "" {
		slug = p.ID
	}
	return fmt.Sprintf("plan_%s.pdf", slug)
}

// reportSlug nombre de archivo ASCII: sin tildes, minúsculas y guiones bajos.
func reportSlug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	return strings.Trim(unsafeFilename.ReplaceAllString(strings.ToLower(plain), "_"), "_")
}
