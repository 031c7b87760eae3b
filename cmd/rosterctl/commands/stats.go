package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wmoldes/roster-backend/internal/domain/dashboard"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
)

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print vacation statistics and the upcoming vacations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Dashboard.GetDashboard(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to load dashboard: %w", err)
			}

			writeStats(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func writeStats(w io.Writer, result *dashboard.DashboardResponse) {
	s := result.Stats
	fmt.Fprintf(w, "Total:       %d\n", s.Total)
	fmt.Fprintf(w, "On vacation: %d\n", s.Current)
	fmt.Fprintf(w, "Upcoming:    %d\n", s.Upcoming)
	fmt.Fprintf(w, "Overdue:     %d\n", s.Overdue)

	fmt.Fprintln(w, "\nBy shift:")
	for _, shift := range employee.Shifts {
		fmt.Fprintf(w, "  %-6s %d\n", shift, s.ByShift[shift])
	}

	if len(result.Upcoming) > 0 {
		fmt.Fprintln(w, "\nUpcoming vacations:")
		for _, e := range result.Upcoming {
			fmt.Fprintf(w, "  %s (%s) - %s\n", e.Name, e.RegistrationID, e.Vacation)
		}
	}
}
