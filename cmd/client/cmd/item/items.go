// Package item holds the item subcommands of the CLI client.
package item

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"itemstore/internal/app/client"
	domain "itemstore/internal/domain/item"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ItemsCmd = &cobra.Command{
	Use:   "item",
	Short: "Work with items",
	Long:  `Create, list, inspect, update and delete items on the server.`,
}

func init() {
	ItemsCmd.AddCommand(listCmd)
	ItemsCmd.AddCommand(getCmd)
	ItemsCmd.AddCommand(createCmd)
	ItemsCmd.AddCommand(updateCmd)
	ItemsCmd.AddCommand(deleteCmd)
}

func appFromCmd(cmd *cobra.Command) (*client.App, error) {
	app, ok := client.FromContext(cmd.Context())
	if !ok {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}

func printItemsTable(items []domain.Item) {
	if len(items) == 0 {
		fmt.Println("no items found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tCREATED\tUPDATED")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			it.ID,
			it.Name,
			truncate(it.Description, 40),
			it.CreatedAt.Format("2006-01-02 15:04:05"),
			it.UpdatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()
}

func printItemJSON(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render JSON: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}

func printItemDetails(it *domain.Item) {
	bold := color.New(color.Bold)
	bold.Printf("Item %s\n", it.ID)
	fmt.Printf("  name:        %s\n", it.Name)
	fmt.Printf("  description: %s\n", it.Description)
	fmt.Printf("  created:     %s\n", it.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  updated:     %s\n", it.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
