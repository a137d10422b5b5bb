package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/habits/internal/domain"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(load ContainerLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose config, store and renderer setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctorDiagnostics(cmd, cmd.OutOrStdout(), load)
		},
	}
}

// runDoctorDiagnostics runs environment diagnostics
func runDoctorDiagnostics(cmd *cobra.Command, out io.Writer, load ContainerLoader) error {
	ctx := cmd.Context()
	container, err := load(ctx)
	if err != nil {
		displayDoctorReport(out, domain.HealthReport{Checks: []domain.HealthCheck{{
			Name:    "Startup",
			Status:  domain.HealthError,
			Details: err.Error(),
		}}})
		return fmt.Errorf("diagnostics completed with errors: %w", err)
	}
	defer container.Close()

	if container.DoctorService == nil {
		return errors.New(ErrDoctorServiceUnavailable)
	}

	report, err := container.DoctorService.Run(ctx)

	// Display report even if there were errors
	displayDoctorReport(out, report)

	if err != nil {
		return fmt.Errorf("diagnostics completed with errors: %w", err)
	}

	return nil
}

// displayDoctorReport displays the health check report
func displayDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}
