package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/semillero-api/internal/application/dto"
	"github.com/jhoicas/semillero-api/pkg/money"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	labelStyle = lipgloss.NewStyle().Width(28)
	cellStyle  = lipgloss.NewStyle().Width(20).Align(lipgloss.Right)
	yearStyle  = lipgloss.NewStyle().Width(6)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

// Printer salida de terminal de la CLI.
type Printer struct {
	w      io.Writer
	format *money.Formatter
}

// New construye un Printer que escribe en w.
func New(w io.Writer, format *money.Formatter) *Printer {
	return &Printer{w: w, format: format}
}

// Success mensaje de éxito.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, successStyle.Render("✓ ")+fmt.Sprintf(format, args...))
}

// Section encabezado de sección.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, primaryStyle.Render(title))
}

// Skipped etapas que no corrieron y su motivo.
func (p *Printer) Skipped(stages []dto.SkippedStageResponse) {
	if len(stages) == 0 {
		return
	}
	p.Section("Etapas omitidas")
	for _, s := range stages {
		fmt.Fprintln(p.w, warningStyle.Render("⚠ ")+s.Stage+" "+mutedStyle.Render(s.Reason))
	}
}

// Projection resumen de la corrida: totales, indicadores y recuperación de la inversión.
func (p *Printer) Projection(name string, proj *dto.ProjectionResponse) {
	fmt.Fprintln(p.w, primaryStyle.Render(name))

	if proj.MonthlyCostTotal != nil {
		p.Section("Costos")
		p.kv("Costo mensual total", p.format.AmountPtr(proj.MonthlyCostTotal))
		p.kv("Costo anual total", p.format.AmountPtr(proj.AnnualCostTotal))
	}

	if ind := proj.FinancialIndicators; ind != nil {
		rows := []string{
			labelStyle.Render("VAN") + p.format.Amount(ind.VAN),
			labelStyle.Render("TIR") + p.format.Rate(ind.TIR),
			labelStyle.Render("B/C") + p.format.Number(ind.BC, 2),
			labelStyle.Render("Período de recuperación") + ind.PR,
		}
		p.Section("Indicadores financieros")
		fmt.Fprintln(p.w, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	}

	if t := proj.InvestmentRecoveryTable; t != nil {
		p.Section("Recuperación de la inversión")
		fmt.Fprintln(p.w, mutedStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			yearStyle.Render("Año"),
			cellStyle.Render("Flujo neto"),
			cellStyle.Render("Recuperado"),
			cellStyle.Render("Saldo"),
		)))
		for _, y := range t.Years {
			fmt.Fprintln(p.w, lipgloss.JoinHorizontal(lipgloss.Top,
				yearStyle.Render(strconv.Itoa(y.Year)),
				cellStyle.Render(p.format.Amount(y.NetCashFlow)),
				cellStyle.Render(p.format.Amount(y.AccumulatedRecovered)),
				cellStyle.Render(p.format.Amount(y.RemainingBalance)),
			))
		}
	}

	if len(proj.UnmatchedProducts) > 0 {
		p.Section("Productos sin demanda (costo unitario 0)")
		for _, name := range proj.UnmatchedProducts {
			fmt.Fprintln(p.w, mutedStyle.Render("• "+name))
		}
	}
	p.Skipped(proj.SkippedStages)
}

func (p *Printer) kv(label, value string) {
	fmt.Fprintln(p.w, labelStyle.Render(label)+value)
}
