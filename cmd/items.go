package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tayloree/voicecart/internal/display"
	"github.com/tayloree/voicecart/internal/shopping"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the shopping list",
	Example: `  voicecart list
  voicecart list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return printItems(cmd, a.store.Items())
	},
}

var toggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Short:   "Mark an item done, or not done",
	Example: `  voicecart toggle 3f2a`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withItem(cmd, args[0], func(a *app, id string) (shopping.Item, error) {
			return a.store.ToggleComplete(id)
		})
	},
}

var qtyCmd = &cobra.Command{
	Use:     "qty <id> <quantity>",
	Short:   "Set an item's quantity",
	Example: `  voicecart qty 3f2a 4`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.Atoi(args[1])
		if err != nil || qty < 1 {
			return invalidArgsError(fmt.Sprintf("quantity must be a whole number of at least 1, got %q", args[1]))
		}
		return withItem(cmd, args[0], func(a *app, id string) (shopping.Item, error) {
			return a.store.UpdateQuantity(id, qty)
		})
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an item by id",
	Long:    "Removes an item by id or id prefix. To remove by name, use: voicecart say \"remove <name>\"",
	Example: `  voicecart remove 3f2a`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withItem(cmd, args[0], func(a *app, id string) (shopping.Item, error) {
			return a.store.RemoveItem(id)
		})
	},
}

var clearCompletedCmd = &cobra.Command{
	Use:     "clear-completed",
	Short:   "Remove every completed item",
	Example: `  voicecart clear-completed`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		n := a.store.ClearCompleted()
		if flagJSON {
			return printJSON(cmd, map[string]int{"cleared": n})
		}
		display.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Cleared %d completed items", n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd, toggleCmd, qtyCmd, removeCmd, clearCompletedCmd)
}

func printItems(cmd *cobra.Command, items []shopping.Item) error {
	if flagJSON {
		return display.PrintItemsJSON(cmd.OutOrStdout(), items)
	}
	display.PrintItems(cmd.OutOrStdout(), items)
	return nil
}

// withItem resolves ref to an item id, applies fn and prints the result.
func withItem(cmd *cobra.Command, ref string, fn func(*app, string) (shopping.Item, error)) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := resolveItemID(a.store.Items(), ref)
	if err != nil {
		return err
	}
	item, err := fn(a, id)
	if err != nil {
		return internalError("updating item", err)
	}
	if flagJSON {
		return printJSON(cmd, item)
	}
	display.PrintItems(cmd.OutOrStdout(), []shopping.Item{item})
	return nil
}

// resolveItemID accepts a full id or any prefix matching exactly one item.
func resolveItemID(items []shopping.Item, ref string) (string, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return "", invalidArgsError("item id is empty", "voicecart list")
	}

	var matches []string
	for _, it := range items {
		id := strings.ToLower(it.ID)
		if id == ref {
			return it.ID, nil
		}
		if strings.HasPrefix(id, ref) {
			matches = append(matches, it.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", notFoundError(fmt.Sprintf("no item with id %q", ref), "voicecart list")
	case 1:
		return matches[0], nil
	default:
		short := make([]string, 0, len(matches))
		for _, m := range matches {
			short = append(short, display.ShortID(m))
		}
		return "", invalidArgsError(
			fmt.Sprintf("id %q matches %d items: %s", ref, len(matches), strings.Join(short, ", ")),
			"Use a longer id prefix.",
		)
	}
}
