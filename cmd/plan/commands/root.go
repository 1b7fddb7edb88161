package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/semillero-api/internal/application/dto"
	"github.com/jhoicas/semillero-api/pkg/logger"
)

var (
	// flags globales
	snapshotFile   string
	currencySymbol string
	logLevel       string
)

var rootCmd = &cobra.Command{
	Use:   "plan",
	Short: "Proyección financiera del plan de negocio sin servidor",
	Long: `plan corre el motor de proyección sobre una instantánea JSON del plan de negocio
(datos generales, narrativas y entradas de la estructura de costos) y muestra los
indicadores o genera el PDF, sin base de datos ni Redis.`,
	SilenceUsage: true,
}

// Execute ejecuta el comando raíz.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&snapshotFile, "file", "f", "", "instantánea JSON del plan (obligatoria)")
	rootCmd.PersistentFlags().StringVar(&currencySymbol, "currency", "$", "símbolo de moneda")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nivel de log (stderr)")
	_ = rootCmd.MarkPersistentFlagRequired("file")

	rootCmd.AddCommand(projectCmd, reportCmd)
}

// newLogger escribe a stderr para no mezclar con la salida --json.
func newLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: logLevel, Output: os.Stderr})
}

func loadSnapshot(path string) (dto.PlanSnapshot, error) {
	var snap dto.PlanSnapshot
	raw, err := os.ReadFile(path)
	if err != nil {
		return snap, fmt.Errorf("leer instantánea: %w", err)
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return snap, fmt.Errorf("instantánea %s: JSON inválido: %w", path, err)
	}
	return snap, nil
}
