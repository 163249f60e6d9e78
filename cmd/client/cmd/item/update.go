package item

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	updateName        string
	updateDescription string
	updateJSON        bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an item",
	Long: `Update an item with a partial merge: only the provided flags
are sent, everything else keeps its stored value. Passing
--description "" explicitly clears the description.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		// Only changed flags travel in the patch, so "not passed" and
		// "set to empty" stay distinguishable.
		var name, description *string
		if cmd.Flags().Changed("name") {
			name = &updateName
		}
		if cmd.Flags().Changed("description") {
			description = &updateDescription
		}
		if name == nil && description == nil {
			return fmt.Errorf("nothing to update: pass --name and/or --description")
		}

		it, err := app.UpdateItem(cmd.Context(), args[0], name, description)
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}

		if updateJSON {
			return printItemJSON(it)
		}
		color.Green("item %s updated", it.ID)
		printItemDetails(it)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "new item name")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new item description")
	updateCmd.Flags().BoolVar(&updateJSON, "json", false, "output as JSON")
}
