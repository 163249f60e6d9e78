package cmd

import (
	"fmt"
	"time"

	"itemstore/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := client.FromContext(cmd.Context())
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		status, err := app.HealthCheck(cmd.Context())
		if err != nil {
			color.Red("server is unreachable: %v", err)
			return err
		}

		uptime := (time.Duration(status.Uptime) * time.Second).String()
		color.Green("server is %s (uptime %s)", status.Status, uptime)
		return nil
	},
}
