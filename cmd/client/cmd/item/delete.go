package item

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		if err := app.DeleteItem(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}

		color.Green("item %s deleted", args[0])
		return nil
	},
}
