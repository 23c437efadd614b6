package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nashtto/partnerctl/internal/api"
	"github.com/nashtto/partnerctl/internal/mapping"
)

var (
	ordersBranch string
	ordersStatus string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Track and manage incoming orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders for a branch",
	RunE:  runOrdersList,
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <order-id> <status>",
	Short: "Update an order's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runOrdersStatus,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersStatusCmd)

	ordersCmd.PersistentFlags().StringVar(&ordersBranch, "branch", "", "Branch id (defaults to your vendor)")
	ordersListCmd.Flags().StringVar(&ordersStatus, "status", "", "Filter by status")
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	branch, err := requireVendorID(a, ordersBranch)
	if err != nil {
		return err
	}

	fmt.Printf("🧾 Fetching orders for branch %s...\n", branch)
	opts := api.OrderListOptions{}
	if ordersStatus != "" {
		opts.Status = mapping.NormalizeOrderStatus(ordersStatus)
	}
	if err := a.Orders.Fetch(cmd.Context(), branch, opts); err != nil {
		if api.IsUnsupported(err) {
			fmt.Printf("🚧 %s\n", err.Error())
			return nil
		}
		fmt.Printf("❌ %s\n", a.Orders.State().Err)
		return err
	}

	orders := a.Orders.State().Orders
	if len(orders) == 0 {
		fmt.Println("📭 No orders found")
		return nil
	}
	for _, order := range orders {
		fmt.Printf("🧾 #%s %s — %s (₹%.2f, %d item(s))\n",
			order.ID, order.CustomerName, order.Status, order.Total, len(order.Items))
	}
	return nil
}

func runOrdersStatus(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	status := mapping.NormalizeOrderStatus(args[1])
	fmt.Printf("🔄 Setting order #%s to %s...\n", args[0], status)
	if err := a.Orders.UpdateStatus(cmd.Context(), args[0], status); err != nil {
		if api.IsUnsupported(err) {
			fmt.Printf("🚧 %s\n", err.Error())
			return nil
		}
		fmt.Printf("❌ %s\n", a.Orders.State().Err)
		return err
	}
	fmt.Println("✅ Status updated")
	return nil
}
