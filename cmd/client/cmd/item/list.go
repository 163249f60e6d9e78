package item

import (
	"fmt"

	"itemstore/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	listPage   int
	listLimit  int
	listSort   string
	listOrder  string
	listJSON   bool
	listCached bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items",
	Long: `List items with pagination and sorting.

With --cached the locally cached items are shown without contacting
the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		params := client.ListParams{
			Page:  listPage,
			Limit: listLimit,
			Sort:  listSort,
			Order: listOrder,
		}

		items, pg, err := app.ListItems(cmd.Context(), params, listCached)
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		if listJSON {
			return printItemJSON(items)
		}

		printItemsTable(items)
		if pg != nil {
			color.New(color.Faint).Printf("page %d/%d, %d items total\n",
				pg.Page, pg.TotalPages, pg.Total)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "items per page (max 100)")
	listCmd.Flags().StringVar(&listSort, "sort", "id", "sort field: id, name, description, createdAt, updatedAt")
	listCmd.Flags().StringVar(&listOrder, "order", "asc", "sort order: asc or desc")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.Flags().BoolVar(&listCached, "cached", false, "list locally cached items")
}
