package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/screens"
	"github.com/spf13/cobra"
)

func (a *app) newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List food categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			dash := screens.NewDashboard(s.client, s.format, s.log)
			if err := dash.LoadCategories(commandContext(cmd)); err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE")
			for _, category := range dash.Categories() {
				fmt.Fprintf(w, "%d\t%s\n", category.ID, category.Title)
			}
			return w.Flush()
		},
	}
}

func (a *app) newFoodsCommand() *cobra.Command {
	var (
		category int64
		search   string
	)

	cmd := &cobra.Command{
		Use:   "foods",
		Short: "List foods, optionally filtered by category and name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			dash := screens.NewDashboard(s.client, s.format, s.log)
			if cmd.Flags().Changed("category") {
				dash.SelectCategory(category)
			}
			dash.SetSearch(search)

			if err := dash.LoadFoods(commandContext(cmd)); err != nil {
				return fmt.Errorf("failed to load foods: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
			for _, food := range dash.Foods() {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", food.ID, food.Name, food.Category, food.FormattedPrice)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int64Var(&category, "category", 0, "only foods of this category id")
	cmd.Flags().StringVar(&search, "search", "", "only foods whose name matches")
	return cmd
}

func (a *app) newOrdersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List placed orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			orders := screens.NewOrders(s.client, s.format, s.log)
			if err := orders.Load(commandContext(cmd)); err != nil {
				return fmt.Errorf("failed to load orders: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFOOD\tPRICE\tQTY\tTOTAL")
			for _, item := range orders.Items() {
				quantity, total := "-", "-"
				if item.Quantity > 0 {
					quantity = fmt.Sprint(item.Quantity)
				}
				if item.Total != nil {
					total = s.format.Format(*item.Total)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", item.ID, item.Name, item.FormattedPrice, quantity, total)
			}
			return w.Flush()
		},
	}
}
