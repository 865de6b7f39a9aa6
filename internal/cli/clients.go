package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
	Long:  `List, add, look up, edit, and delete clients.`,
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		clients, err := appInstance.ClientService.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		if len(clients) == 0 {
			fmt.Println("No clients registered")
			return nil
		}

		dateFormat := appInstance.Config.Display.DateFormat
		fmt.Printf("%-12s %-25s %-30s %-12s\n", "CI", "Name", "Email", "Registered")
		fmt.Println("--------------------------------------------------------------------------------")
		for _, client := range clients {
			fmt.Printf("%-12s %-25s %-30s %-12s\n",
				client.NumCI(),
				truncate(client.Name(), 25),
				truncate(client.Email(), 30),
				client.RegisteredAt().Format(dateFormat),
			)
		}

		fmt.Printf("\nTotal: %d client(s)\n", len(clients))
		return nil
	},
}

var clientsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ci, _ := cmd.Flags().GetString("ci")
		email, _ := cmd.Flags().GetString("email")

		client, err := appInstance.ClientService.Add(ctx, args[0], ci, email)
		if err != nil {
			return fmt.Errorf("failed to add client: %w", err)
		}

		fmt.Printf("✓ Client registered: %s (CI: %s)\n", client.Name(), client.NumCI())
		return nil
	},
}

var clientsGetCmd = &cobra.Command{
	Use:   "get [ci]",
	Short: "Show one client by CI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := appInstance.ClientService.Get(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Println(client)
		return nil
	},
}

var clientsEditCmd = &cobra.Command{
	Use:   "edit [ci]",
	Short: "Edit an existing client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ci := args[0]

		if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("email") {
			return fmt.Errorf("nothing to edit: pass --name and/or --email")
		}

		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			if _, err := appInstance.ClientService.Rename(ctx, ci, name); err != nil {
				return fmt.Errorf("failed to rename client: %w", err)
			}
		}
		if cmd.Flags().Changed("email") {
			email, _ := cmd.Flags().GetString("email")
			if _, err := appInstance.ClientService.ChangeEmail(ctx, ci, email); err != nil {
				return fmt.Errorf("failed to change email: %w", err)
			}
		}

		client, err := appInstance.ClientService.Get(ctx, ci)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Client updated: %s\n", client.Name())
		return nil
	},
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete [ci]",
	Short: "Delete a client by CI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ci := args[0]

		if err := appInstance.ClientService.Delete(ctx, ci); err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}
		fmt.Printf("✓ Client deleted (CI: %s)\n", ci)

		// Deletes do not cascade; point out any sales left dangling.
		if sales, err := appInstance.SalesService.ListByClient(ctx, ci); err == nil && len(sales) > 0 {
			fmt.Printf("  Note: %d sale(s) still reference this client\n", len(sales))
		}
		return nil
	},
}

func init() {
	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsGetCmd)
	clientsCmd.AddCommand(clientsEditCmd)
	clientsCmd.AddCommand(clientsDeleteCmd)

	// Add flags
	clientsAddCmd.Flags().String("ci", "", "National ID number (digits only, required)")
	clientsAddCmd.MarkFlagRequired("ci")
	clientsAddCmd.Flags().String("email", "", "Client email (required)")
	clientsAddCmd.MarkFlagRequired("email")

	// Edit flags
	clientsEditCmd.Flags().String("name", "", "New name")
	clientsEditCmd.Flags().String("email", "", "New email")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
