package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ivanc/salesdesk/internal/domain"
	"github.com/spf13/cobra"
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Manage sales",
	Long:  `Record, list, look up, and delete sales linking a client to a product.`,
}

var salesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sales",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sales, err := appInstance.SalesService.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list sales: %w", err)
		}

		printSalesTable(sales)
		return nil
	},
}

var salesAddCmd = &cobra.Command{
	Use:   "add [client-ci] [product-id]",
	Short: "Record a sale for an existing client and product",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, _ := cmd.Flags().GetString("id")
		if id == "" {
			id = uuid.NewString()
		}

		sale, err := appInstance.SalesService.Add(ctx, args[0], args[1], id)
		if err != nil {
			return fmt.Errorf("failed to record sale: %w", err)
		}

		fmt.Printf("✓ Sale recorded: %s\n", sale.ID())
		fmt.Printf("  %s bought %s\n", sale.Client().Name(), sale.Product().Name())
		return nil
	},
}

var salesGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one sale by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sale, err := appInstance.SalesService.Get(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Println(sale)
		return nil
	},
}

var salesMarkCmd = &cobra.Command{
	Use:   "mark [id]",
	Short: "Mark a sale as sold or pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sold, _ := cmd.Flags().GetBool("sold")
		sale, err := appInstance.SalesService.MarkSold(ctx, args[0], sold)
		if err != nil {
			return fmt.Errorf("failed to mark sale: %w", err)
		}

		status := "sold"
		if !sale.Sold() {
			status = "pending"
		}
		fmt.Printf("✓ Sale %s marked %s\n", sale.ID(), status)
		return nil
	},
}

var salesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a sale by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := appInstance.SalesService.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete sale: %w", err)
		}
		fmt.Printf("✓ Sale deleted (ID: %s)\n", args[0])
		return nil
	},
}

var salesByClientCmd = &cobra.Command{
	Use:   "by-client [ci]",
	Short: "List the sales of one client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sales, err := appInstance.SalesService.ListByClient(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to list sales: %w", err)
		}

		printSalesTable(sales)
		return nil
	},
}

var salesByProductCmd = &cobra.Command{
	Use:   "by-product [id]",
	Short: "List the sales of one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sales, err := appInstance.SalesService.ListByProduct(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to list sales: %w", err)
		}

		printSalesTable(sales)
		return nil
	},
}

func printSalesTable(sales []*domain.Sale) {
	if len(sales) == 0 {
		fmt.Println("No sales recorded")
		return
	}

	dateFormat := appInstance.Config.Display.DateFormat
	fmt.Printf("%-38s %-20s %-20s %-12s %-8s\n", "ID", "Client", "Product", "Date", "Status")
	fmt.Println("----------------------------------------------------------------------------------------------------")
	for _, sale := range sales {
		status := "sold"
		if !sale.Sold() {
			status = "pending"
		}
		fmt.Printf("%-38s %-20s %-20s %-12s %-8s\n",
			sale.ID(),
			truncate(sale.Client().Name(), 20),
			truncate(sale.Product().Name(), 20),
			sale.PurchasedAt().Format(dateFormat),
			status,
		)
	}

	fmt.Printf("\nTotal: %d sale(s)\n", len(sales))
}

func init() {
	salesCmd.AddCommand(salesListCmd)
	salesCmd.AddCommand(salesAddCmd)
	salesCmd.AddCommand(salesGetCmd)
	salesCmd.AddCommand(salesMarkCmd)
	salesCmd.AddCommand(salesDeleteCmd)
	salesCmd.AddCommand(salesByClientCmd)
	salesCmd.AddCommand(salesByProductCmd)

	salesAddCmd.Flags().String("id", "", "Sale identifier (generated when omitted)")
	salesMarkCmd.Flags().Bool("sold", true, "Sold status to set")
}
