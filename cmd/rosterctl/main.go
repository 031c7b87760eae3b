package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/wmoldes/roster-backend/cmd/rosterctl/commands"
	"github.com/wmoldes/roster-backend/internal/config"
	"github.com/wmoldes/roster-backend/internal/pkg/clock"
	"github.com/wmoldes/roster-backend/internal/pkg/database"
	"github.com/wmoldes/roster-backend/internal/repository/postgresql"
	dashboardService "github.com/wmoldes/roster-backend/internal/service/dashboard"
	employeeService "github.com/wmoldes/roster-backend/internal/service/employee"
	exportService "github.com/wmoldes/roster-backend/internal/service/export"
)

var (
	timezone string
	verbose  bool
	db       *database.DB
)

func main() {
	app := &commands.AppContext{Ctx: context.Background()}

	rootCmd := &cobra.Command{
		Use:   "rosterctl",
		Short: "WMOLDES roster admin CLI",
		Long:  `Export the roster, print vacation statistics and seed employees straight against the database.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if db != nil {
				db.Close()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "America/Sao_Paulo", "Time zone vacation months are evaluated in")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(commands.ExportCmd(app))
	rootCmd.AddCommand(commands.StatsCmd(app))
	rootCmd.AddCommand(commands.SeedCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp connects to the database and builds the services
func initApp(app *commands.AppContext) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	clk := clock.New(loc)

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err = database.NewPostgreSQLDB(app.Ctx, dbCfg.URL(), database.PoolConfig{MaxConns: 2})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	app.Employees = employeeService.NewEmployeeService(postgresql.NewTxManager(db), employeeRepo, clk)
	app.Dashboard = dashboardService.NewDashboardService(employeeRepo, clk)
	app.Export = exportService.NewExportService(employeeRepo, clk)
	return nil
}
