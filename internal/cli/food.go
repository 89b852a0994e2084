package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/screens"
	"github.com/spf13/cobra"
)

func (a *app) newFoodCommand() *cobra.Command {
	var (
		extras   []string
		quantity int
		favorite bool
		order    bool
	)

	cmd := &cobra.Command{
		Use:   "food <id>",
		Short: "Show a food, pick extras, toggle favorite and place an order",
		Example: `  foodapp food 1
  foodapp food 1 --extra 1=2 --quantity 3 --order
  foodapp food 4 --favorite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid food id %q", args[0])
			}

			selections, err := parseExtras(extras)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("quantity") && quantity < 1 {
				return fmt.Errorf("quantity must be at least 1")
			}

			s, err := a.newSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)

			details := screens.NewFoodDetails(s.client, s.format, s.log, id)
			if err := details.Load(ctx); err != nil {
				return fmt.Errorf("failed to load food %d: %w", id, err)
			}

			for _, sel := range selections {
				if !details.SetExtraQuantity(sel.id, sel.quantity) {
					return fmt.Errorf("food %d has no extra %d", id, sel.id)
				}
			}
			if cmd.Flags().Changed("quantity") {
				details.SetQuantity(quantity)
			}

			if favorite {
				if err := details.ToggleFavorite(ctx); err != nil {
					return fmt.Errorf("failed to toggle favorite: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if err := printDetails(out, details); err != nil {
				return err
			}

			if !order {
				return nil
			}

			if err := details.SubmitOrder(ctx); err != nil {
				if alert := details.Alert(); alert != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", alert.Title, alert.Message)
				}
				return err
			}
			fmt.Fprintf(out, "%s #%d\n", screens.OrderConfirmedText, details.Order().ID)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&extras, "extra", nil, "extra quantity as id=qty, repeatable")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "food quantity")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "toggle the favorite status")
	cmd.Flags().BoolVar(&order, "order", false, "place the order")
	return cmd
}

type extraSelection struct {
	id       int64
	quantity int
}

func parseExtras(raw []string) ([]extraSelection, error) {
	selections := make([]extraSelection, 0, len(raw))
	for _, item := range raw {
		idPart, qtyPart, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid extra %q: want id=qty", item)
		}

		id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid extra id in %q", item)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(qtyPart))
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("invalid extra quantity in %q", item)
		}

		selections = append(selections, extraSelection{id: id, quantity: qty})
	}
	return selections, nil
}

func printDetails(out io.Writer, details *screens.FoodDetails) error {
	food := details.Food()

	favorite := "no"
	if details.IsFavorite() {
		favorite = "yes"
	}
	if details.FavoriteCheckErr() != nil {
		favorite += " (status unavailable)"
	}

	fmt.Fprintf(out, "%s  %s\n", food.Name, details.FormattedPrice())
	if food.Description != "" {
		fmt.Fprintln(out, food.Description)
	}
	fmt.Fprintf(out, "Favorite: %s\n\n", favorite)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EXTRA\tNAME\tVALUE\tQTY")
	for _, extra := range details.Extras() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", extra.ID, extra.Name, details.FormatValue(extra.Value), extra.Quantity)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nQuantity: %d\nTotal: %s\n", details.Quantity(), details.TotalText())
	return nil
}
