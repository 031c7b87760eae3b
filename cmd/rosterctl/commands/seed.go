package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wmoldes/roster-backend/internal/domain/employee"
	"gopkg.in/yaml.v3"
)

type seedEmployee struct {
	Name           string `yaml:"name"`
	RegistrationID string `yaml:"registration_id"`
	Role           string `yaml:"role"`
	Shift          string `yaml:"shift"`
	Team           string `yaml:"team"`
	Vacation       string `yaml:"vacation"`
	Phone          string `yaml:"phone"`
	HireDate       string `yaml:"hire_date"`
	PhotoURL       string `yaml:"photo_url"`
}

type seedFile struct {
	Employees []seedEmployee `yaml:"employees"`
}

// SeedCmd creates the seed command
func SeedCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Import employees from a YAML file, skipping registration ids already in use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open seed file: %w", err)
			}
			defer f.Close()

			reqs, err := parseSeed(f)
			if err != nil {
				return err
			}

			created, skipped, err := seedEmployees(app, reqs, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nCreated %d employees, skipped %d\n", created, skipped)
			return nil
		},
	}
}

func parseSeed(r io.Reader) ([]employee.CreateEmployeeRequest, error) {
	var file seedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	reqs := make([]employee.CreateEmployeeRequest, 0, len(file.Employees))
	for _, e := range file.Employees {
		reqs = append(reqs, employee.CreateEmployeeRequest{
			Name:           e.Name,
			RegistrationID: e.RegistrationID,
			Role:           e.Role,
			Shift:          e.Shift,
			Team:           e.Team,
			Vacation:       e.Vacation,
			Phone:          e.Phone,
			HireDate:       e.HireDate,
			PhotoURL:       e.PhotoURL,
		})
	}
	return reqs, nil
}

// seedEmployees creates every request through the employee service. Duplicates are
// reported and skipped; any other failure stops the import.
func seedEmployees(app *AppContext, reqs []employee.CreateEmployeeRequest, out io.Writer) (created, skipped int, err error) {
	for _, req := range reqs {
		_, err := app.Employees.CreateEmployee(app.Ctx, req)
		switch {
		case errors.Is(err, employee.ErrRegistrationIDExists):
			fmt.Fprintf(out, "  - %s (%s) already registered\n", req.Name, req.RegistrationID)
			skipped++
		case err != nil:
			return created, skipped, fmt.Errorf("failed to create %s (%s): %w", req.Name, req.RegistrationID, err)
		default:
			fmt.Fprintf(out, "  + %s (%s)\n", req.Name, req.RegistrationID)
			created++
		}
	}
	return created, skipped, nil
}
