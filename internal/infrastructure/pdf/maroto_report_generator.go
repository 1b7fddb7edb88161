// Package pdf genera el documento del plan de negocio con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del proyecto  │  Representante + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS GENERALES / MODELO DE NEGOCIO / EQUIPO               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  7.1 Tasas  7.2 Demanda  7.3 Equipos  7.4 Costos unitarios  │
//	│  7.5 Financiamiento  7.6 Ingresos  7.7 Estado de resultados │
//	│  7.8 Indicadores  7.9 Recuperación de la inversión          │
//	└─────────────────────────────────────────────────────────────┘
//
// El generador solo formatea: todos los valores vienen calculados en el proyecto.
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/semillero-api/internal/application/project"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/pkg/money"
)

var _ project.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 98, Blue: 65}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// wrapWidth caracteres por línea de párrafo a tamaño 8 en el ancho completo.
const wrapWidth = 105

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa project.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
	format *money.Formatter
	now    func() time.Time
}

// NewMarotoReportGenerator author aparece en los metadatos del PDF.
func NewMarotoReportGenerator(author, currencySymbol string) *MarotoReportGenerator {
	return &MarotoReportGenerator{
		author: author,
		format: money.NewFormatter(currencySymbol),
		now:    time.Now,
	}
}

// GenerateProjectPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProjectPDF(ctx context.Context, p *entity.Project) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("pdf: proyecto nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Plan de negocio - "+p.Name(), true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(generalDataRows(p.GeneralData)...)
	m.AddRows(businessModelRows(p)...)
	m.AddRows(teamRows(p.Team)...)

	cs := p.CostStructure
	m.AddRows(g.ratesRows(cs.FinancialRates)...)
	m.AddRows(g.demandRows(cs.DemandDetails)...)
	m.AddRows(g.equipmentRows(cs.Equipment)...)
	m.AddRows(g.unitCostRows(cs)...)
	m.AddRows(g.financingRows(cs.FinancingStructure, cs.Financing)...)
	m.AddRows(g.incomeRows(cs.IncomeProjection)...)
	m.AddRows(g.statementRows(cs.IncomeStatementProjection)...)
	m.AddRows(g.indicatorRows(cs.FinancialIndicators)...)
	m.AddRows(g.recoveryRows(cs.InvestmentRecoveryTable)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones del perfil ──────────────────────────────────────────────────────

// headerRow: nombre del proyecto (izq) y representante + fecha de emisión (der).
func (g *MarotoReportGenerator) headerRow(p *entity.Project) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("PLAN DE NEGOCIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New(p.Name(), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New(p.GeneralData.RepresentativeName, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("C.I. "+nonEmpty(p.GeneralData.CI, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Emitido: "+g.now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func generalDataRows(gd entity.GeneralData) []core.Row {
	ruc := "No"
	if gd.HasRUC {
		ruc = gd.RUC
	}
	rows := []core.Row{sectionTitle("1. DATOS GENERALES")}
	pairs := [][2]string{
		{"Provincia / Cantón / Parroquia", strings.Join([]string{gd.Province, gd.Canton, gd.Parish}, " / ")},
		{"Dirección", gd.Address},
		{"Correo / Celular", gd.Email + "  |  " + gd.CellPhone},
		{"Género / Nacionalidad", gd.Gender + "  |  " + gd.Nationality},
		{"Fecha de nacimiento", gd.BirthDate},
		{"RUC", ruc},
		{"Inicio de actividades", gd.StartDate},
	}
	for _, kv := range pairs {
		rows = append(rows, keyValueRow(kv[0], nonEmpty(kv[1], "-")))
	}
	return rows
}

func businessModelRows(p *entity.Project) []core.Row {
	rows := []core.Row{sectionTitle("2. MODELO DE NEGOCIO")}
	narratives := [][2]string{
		{"Descripción del negocio", p.BusinessDescription},
		{"Propuesta de valor", p.ValueProposition},
		{"Canales de comunicación", p.CommunicationChannels},
		{"Canales de comercialización", p.CommercializationChannels},
		{"Cadena de abastecimiento", p.SupplyChain},
		{"Socios clave", p.KeyPartners},
		{"Segmentos de clientes", p.CustomerSegments},
	}
	for _, n := range narratives {
		if strings.TrimSpace(n[1]) == "" {
			continue
		}
		rows = append(rows, subTitle(n[0]))
		rows = append(rows, paragraphRows(n[1])...)
	}
	return rows
}

func teamRows(team []entity.TeamMember) []core.Row {
	if len(team) == 0 {
		return nil
	}
	rows := []core.Row{
		sectionTitle("3. EQUIPO EMPRENDEDOR"),
		tableHeader([]string{"Nombre", "Cargo", "Experiencia"}, []int{4, 3, 5}),
	}
	for _, m := range team {
		rows = append(rows, tableRow([]string{m.Name, m.Role, m.Experience}, []int{4, 3, 5}, align.Left))
	}
	return rows
}

// ── Estructura de costos (7.x) ────────────────────────────────────────────────

func (g *MarotoReportGenerator) ratesRows(r *entity.FinancialRates) []core.Row {
	rows := []core.Row{sectionTitle("7.1 TASAS")}
	if r == nil {
		return append(rows, pendingRow())
	}
	return append(rows,
		keyValueRow("Crecimiento de la producción", g.format.Percent(r.ProductionGrowth)),
		keyValueRow("Crecimiento del precio", g.format.Percent(r.PriceGrowth)),
		keyValueRow("Tasa de descuento", g.format.Percent(r.DiscountRate)),
		keyValueRow("Inflación", g.format.Percent(r.InflationRate)),
		keyValueRow("Incremento salarial", g.format.Percent(r.SalaryIncrease)),
	)
}

func (g *MarotoReportGenerator) demandRows(demand []entity.DemandDetail) []core.Row {
	sizes := []int{6, 3, 3}
	rows := []core.Row{
		sectionTitle("7.2 DEMANDA"),
		tableHeader([]string{"Producto / servicio", "Demanda mensual", "PVP"}, sizes),
	}
	for _, d := range demand {
		rows = append(rows, tableRow([]string{d.ProductName, g.format.Number(d.MonthlyDemand, 0), g.format.Amount(d.PVP)}, sizes, align.Right))
	}
	return rows
}

func (g *MarotoReportGenerator) equipmentRows(equipment []entity.Equipment) []core.Row {
	sizes := []int{4, 2, 2, 2, 2}
	rows := []core.Row{
		sectionTitle("7.3 EQUIPOS Y MAQUINARIA"),
		tableHeader([]string{"Descripción", "Cantidad", "Precio unit.", "Total", "Financiamiento"}, sizes),
	}
	for _, e := range equipment {
		rows = append(rows, tableRow([]string{
			e.Description,
			g.format.Number(e.AnnualQuantity, 0),
			g.format.Amount(e.UnitPrice),
			g.format.Amount(e.TotalCost),
			nonEmpty(e.FinancingType, entity.FinancingOwn),
		}, sizes, align.Right))
	}
	return rows
}

func (g *MarotoReportGenerator) unitCostRows(cs entity.CostStructure) []core.Row {
	sizes := []int{4, 2, 2, 2, 2}
	rows := []core.Row{sectionTitle("7.4 COSTOS UNITARIOS")}
	if len(cs.UnitCosts) == 0 {
		return append(rows, pendingRow())
	}
	rows = append(rows, tableHeader([]string{"Producto", "Unidad", "Cantidad", "Costo unit.", "Costo total"}, sizes))
	for _, u := range cs.UnitCosts {
		rows = append(rows, tableRow([]string{
			u.ProductName, u.Unit, g.format.Number(u.Quantity, 0), g.format.Amount(u.UnitPrice), g.format.Amount(u.TotalCost),
		}, sizes, align.Right))
	}
	return append(rows,
		totalRow("Total mensual", g.format.AmountPtr(cs.MonthlyCostTotal)),
		totalRow("Total anual", g.format.AmountPtr(cs.AnnualCostTotal)),
	)
}

func (g *MarotoReportGenerator) financingRows(fs *entity.FinancingStructure, narrative string) []core.Row {
	sizes := []int{5, 3, 2, 2}
	rows := []core.Row{sectionTitle("7.5 ESTRUCTURA DEL FINANCIAMIENTO")}
	if fs == nil {
		return append(rows, pendingRow())
	}
	rows = append(rows, tableHeader([]string{"Descripción", "Inversión", "Fuente", "Participación"}, sizes))
	for _, it := range fs.Items {
		rows = append(rows, tableRow([]string{
			it.Description, g.format.Amount(it.Investment), financingSource(it), g.format.Percent(fs.ParticipationPercentage),
		}, sizes, align.Right))
	}
	rows = append(rows, totalRow("Inversión total", g.format.Amount(fs.TotalInvestment)))
	if strings.TrimSpace(narrative) != "" {
		rows = append(rows, paragraphRows(narrative)...)
	}
	return rows
}

func (g *MarotoReportGenerator) incomeRows(ip *entity.IncomeProjection) []core.Row {
	rows := []core.Row{sectionTitle("7.6 PROYECCIÓN DE INGRESOS")}
	if ip == nil {
		return append(rows, pendingRow())
	}
	sizes := []int{1, 3, 3, 3, 2}
	rows = append(rows, tableHeader([]string{"Año", "Entradas", "Ventas", "Salidas", "Préstamo"}, sizes))
	for _, y := range ip.Years {
		rows = append(rows, tableRow([]string{
			strconv.Itoa(y.Year), g.format.Amount(y.Entries), g.format.Amount(y.Sales), g.format.Amount(y.Exits), g.format.Amount(y.Loan),
		}, sizes, align.Right))
	}
	return rows
}

func (g *MarotoReportGenerator) statementRows(sp *entity.IncomeStatementProjection) []core.Row {
	rows := []core.Row{sectionTitle("7.7 ESTADO DE RESULTADOS PROYECTADO")}
	if sp == nil {
		return append(rows, pendingRow())
	}
	sizes := []int{1, 3, 3, 3, 2}
	rows = append(rows, tableHeader([]string{"Año", "Ingresos", "Gastos operativos", "Sueldos", "Depreciación"}, sizes))
	for _, y := range sp.Years {
		rows = append(rows, tableRow([]string{
			strconv.Itoa(y.Year), g.format.Amount(y.Income), g.format.Amount(y.OperativeExpenses), g.format.Amount(y.SalariesWages), g.format.Amount(y.DepreciationExpense),
		}, sizes, align.Right))
	}
	return rows
}

func (g *MarotoReportGenerator) indicatorRows(ind *entity.FinancialIndicators) []core.Row {
	rows := []core.Row{sectionTitle("7.8 INDICADORES FINANCIEROS")}
	if ind == nil {
		return append(rows, pendingRow())
	}
	return append(rows,
		keyValueRow("VAN", g.format.Amount(ind.VAN)),
		keyValueRow("TIR", g.format.Rate(ind.TIR)),
		keyValueRow("B/C", g.format.Number(ind.BC, 2)),
		keyValueRow("Período de recuperación", ind.PR),
	)
}

func (g *MarotoReportGenerator) recoveryRows(t *entity.InvestmentRecoveryTable) []core.Row {
	rows := []core.Row{sectionTitle("7.9 RECUPERACIÓN DE LA INVERSIÓN")}
	if t == nil {
		return append(rows, pendingRow())
	}
	sizes := []int{2, 4, 3, 3}
	rows = append(rows, tableHeader([]string{"Año", "Flujo neto", "Acumulado", "Por recuperar"}, sizes))
	for _, y := range t.Years {
		rows = append(rows, tableRow([]string{
			strconv.Itoa(y.Year), g.format.Amount(y.NetCashFlow), g.format.Amount(y.AccumulatedRecovered), g.format.Amount(y.RemainingBalance),
		}, sizes, align.Right))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 4}),
	))
}

func subTitle(title string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1.5}),
	))
}

func keyValueRow(key, value string) core.Row {
	return row.New(5).Add(
		col.New(5).Add(text.New(key, props.Text{Size: 8, Color: colorGray, Top: 0.5})),
		col.New(7).Add(text.New(value, props.Text{Size: 8, Top: 0.5})),
	)
}

func pendingRow() core.Row {
	return row.New(5).Add(col.New(12).Add(
		text.New("Sin datos suficientes para esta sección.", props.Text{Size: 8, Color: colorGray, Top: 0.5}),
	))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

// tableRow la primera columna se alinea a la izquierda y el resto con a.
func tableRow(values []string, sizes []int, a align.Type) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		colAlign := a
		if i == 0 {
			colAlign = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 7.5, Align: colAlign, Top: 0.5, Left: 1, Right: 1,
		})))
	}
	return row.New(5).Add(cols...)
}

func totalRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 2})),
		col.New(4).Add(text.New(value, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorPrimary})),
	)
}

func paragraphRows(s string) []core.Row {
	lines := wrapText(s, wrapWidth)
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(4.5).Add(col.New(12).Add(text.New(l, props.Text{Size: 8}))))
	}
	return rows
}

// wrapText parte s en líneas de hasta width runas sin cortar palabras.
func wrapText(s string, width int) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		var b strings.Builder
		n := 0
		for _, w := range words {
			wl := len([]rune(w))
			if n > 0 && n+1+wl > width {
				out = append(out, b.String())
				b.Reset()
				n = 0
			}
			if n > 0 {
				b.WriteByte(' ')
				n++
			}
			b.WriteString(w)
			n += wl
		}
		out = append(out, b.String())
	}
	return out
}

func financingSource(it entity.FinancingItem) string {
	switch {
	case it.LoanSource:
		return entity.FinancingLoan
	case it.DonationSource:
		return entity.FinancingDonation
	default:
		return entity.FinancingOwn
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
