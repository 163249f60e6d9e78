package item

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	createName        string
	createDescription string
	createJSON        bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an item",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		it, err := app.CreateItem(cmd.Context(), createName, createDescription)
		if err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}

		if createJSON {
			return printItemJSON(it)
		}
		color.Green("item %s created", it.ID)
		printItemDetails(it)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "item name (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "item description")
	createCmd.Flags().BoolVar(&createJSON, "json", false, "output as JSON")
	createCmd.MarkFlagRequired("name")
}
