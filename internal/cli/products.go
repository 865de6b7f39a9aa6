package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products",
	Long:  `List, add, look up, edit, and delete products.`,
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		products, err := appInstance.ProductService.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list products: %w", err)
		}

		if len(products) == 0 {
			fmt.Println("No products available")
			return nil
		}

		symbol := appInstance.Config.Display.CurrencySymbol
		fmt.Printf("%-15s %-30s %-12s\n", "ID", "Name", "Cost")
		fmt.Println("----------------------------------------------------------")
		for _, product := range products {
			fmt.Printf("%-15s %-30s %s%-11.2f\n",
				product.ID(),
				truncate(product.Name(), 30),
				symbol,
				product.Cost(),
			)
		}

		fmt.Printf("\nTotal: %d product(s)\n", len(products))
		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add [id]",
	Short: "Add a new product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		name, _ := cmd.Flags().GetString("name")
		cost, _ := cmd.Flags().GetFloat64("cost")

		product, err := appInstance.ProductService.Add(ctx, args[0], name, cost)
		if err != nil {
			return fmt.Errorf("failed to add product: %w", err)
		}

		fmt.Printf("✓ Product created: %s (ID: %s)\n", product.Name(), product.ID())
		fmt.Printf("  Cost: %s%.2f\n", appInstance.Config.Display.CurrencySymbol, product.Cost())
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one product by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		product, err := appInstance.ProductService.Get(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Println(product)
		return nil
	},
}

var productsEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id := args[0]

		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("cost") {
			return fmt.Errorf("nothing to edit: pass --name and/or --cost")
		}

		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			if _, err := appInstance.ProductService.Rename(ctx, id, name); err != nil {
				return fmt.Errorf("failed to rename product: %w", err)
			}
		}
		if cmd.Flags().Changed("cost") {
			cost, _ := cmd.Flags().GetFloat64("cost")
			if _, err := appInstance.ProductService.Reprice(ctx, id, cost); err != nil {
				return fmt.Errorf("failed to reprice product: %w", err)
			}
		}

		product, err := appInstance.ProductService.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Product updated: %s\n", product.Name())
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a product by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		id := args[0]

		if err := appInstance.ProductService.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		fmt.Printf("✓ Product deleted (ID: %s)\n", id)

		// Deletes do not cascade; point out any sales left dangling.
		if sales, err := appInstance.SalesService.ListByProduct(ctx, id); err == nil && len(sales) > 0 {
			fmt.Printf("  Note: %d sale(s) still reference this product\n", len(sales))
		}
		return nil
	},
}

func init() {
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsEditCmd)
	productsCmd.AddCommand(productsDeleteCmd)

	// Add flags
	productsAddCmd.Flags().String("name", "", "Product name (required)")
	productsAddCmd.MarkFlagRequired("name")
	productsAddCmd.Flags().Float64("cost", 0, "Product cost (required, non-negative)")
	productsAddCmd.MarkFlagRequired("cost")

	// Edit flags
	productsEditCmd.Flags().String("name", "", "New name")
	productsEditCmd.Flags().Float64("cost", 0, "New cost")
}
