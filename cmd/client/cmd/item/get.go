package item

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		it, err := app.GetItem(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get item: %w", err)
		}

		if getJSON {
			return printItemJSON(it)
		}
		printItemDetails(it)
		return nil
	},
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "output as JSON")
}
