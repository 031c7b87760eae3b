package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"github.com/wmoldes/roster-backend/internal/domain/export"
)

// ExportCmd creates the export command
func ExportCmd(app *AppContext) *cobra.Command {
	var (
		format string
		outDir string
		filter employee.EmployeeFilter
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the roster to a CSV or XLSX file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			file, err := app.Export.Export(app.Ctx, f, filter)
			if err != nil {
				return fmt.Errorf("failed to export roster: %w", err)
			}

			path := filepath.Join(outDir, file.Name)
			if err := os.WriteFile(path, file.Body, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Roster written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatCSV), "csv or xlsx")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	cmd.Flags().StringVar(&filter.Shift, "shift", "", "Only this shift")
	cmd.Flags().StringVar(&filter.Role, "role", "", "Only this role")
	cmd.Flags().StringVar(&filter.Team, "team", "", "Only this team")
	cmd.Flags().StringVar((*string)(&filter.Vacation), "vacation", "", "Vacation filter (feriados, proximos, atrasadas, este-mes, nao-informado)")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "Search text")

	return cmd
}
