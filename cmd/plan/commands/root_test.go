package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/semillero-api/cmd/plan/output"
	"github.com/jhoicas/semillero-api/internal/application/project"
	"github.com/jhoicas/semillero-api/pkg/money"
)

func TestLoadSnapshot_Panaderia(t *testing.T) {
	snap, err := loadSnapshot(filepath.Join("testdata", "panaderia.json"))

	require.NoError(t, err)
	assert.Equal(t, "Panadería La Espiga", snap.GeneralData.ProjectName)
	require.Len(t, snap.CostStructure.Equipment, 1)
	assert.Equal(t, "PRÉSTAMO", snap.CostStructure.Equipment[0].FinancingType)
}

func TestLoadSnapshot_JSONInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roto.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := loadSnapshot(path)

	assert.ErrorContains(t, err, "JSON inválido")
}

func TestProjection_ImprimeIndicadores(t *testing.T) {
	snap, err := loadSnapshot(filepath.Join("testdata", "panaderia.json"))
	require.NoError(t, err)
	p, proj, err := project.Simulate(snap)
	require.NoError(t, err)

	var buf bytes.Buffer
	output.New(&buf, money.NewFormatter("$")).Projection(p.Name(), proj)

	assert.Contains(t, buf.String(), "Panadería La Espiga")
	assert.Contains(t, buf.String(), "1 AÑOS")
	assert.NotContains(t, buf.String(), "Etapas omitidas")
}

func TestReport_EscribePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")
	rootCmd.SetArgs([]string{"report", "-f", filepath.Join("testdata", "panaderia.json"), "-o", path})
	rootCmd.SetOut(&bytes.Buffer{})

	require.NoError(t, rootCmd.Execute())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
