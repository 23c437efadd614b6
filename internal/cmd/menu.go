package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nashtto/partnerctl/internal/api"
	"github.com/nashtto/partnerctl/internal/mapping"
	"github.com/nashtto/partnerctl/internal/models"
)

var (
	menuBranch        string
	menuPage          int
	menuSize          int
	menuCategory      string
	menuAvailableOnly bool

	menuItemName        string
	menuItemDescription string
	menuItemPrice       float64
	menuItemCategory    string
	menuItemSpice       string
	menuItemPrepTime    int
	menuItemQuantity    int
	menuItemVegetarian  bool
	menuItemAvailable   bool
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage your menu items",
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "List menu items for a branch",
	RunE:  runMenuList,
}

var menuAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a menu item",
	RunE:  runMenuAdd,
}

var menuUpdateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Update a menu item",
	Args:  cobra.ExactArgs(1),
	RunE:  runMenuUpdate,
}

var menuDeleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Delete a menu item",
	Args:  cobra.ExactArgs(1),
	RunE:  runMenuDelete,
}

func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.AddCommand(menuListCmd)
	menuCmd.AddCommand(menuAddCmd)
	menuCmd.AddCommand(menuUpdateCmd)
	menuCmd.AddCommand(menuDeleteCmd)

	menuCmd.PersistentFlags().StringVar(&menuBranch, "branch", "", "Branch id (defaults to your vendor)")

	menuListCmd.Flags().IntVar(&menuPage, "page", 0, "Page number (zero-based)")
	menuListCmd.Flags().IntVar(&menuSize, "size", 50, "Page size")
	menuListCmd.Flags().StringVar(&menuCategory, "category", "", "Filter by category")
	menuListCmd.Flags().BoolVar(&menuAvailableOnly, "available", false, "Show only available items")

	for _, c := range []*cobra.Command{menuAddCmd, menuUpdateCmd} {
		c.Flags().StringVar(&menuItemName, "name", "", "Item name")
		c.Flags().StringVar(&menuItemDescription, "description", "", "Item description")
		c.Flags().Float64Var(&menuItemPrice, "price", 0, "Item price")
		c.Flags().StringVar(&menuItemCategory, "item-category", "", "Item category")
		c.Flags().StringVar(&menuItemSpice, "spice", "mild", "Spice level (mild|medium|hot|extra-hot)")
		c.Flags().IntVar(&menuItemPrepTime, "prep-time", 15, "Preparation time in minutes")
		c.Flags().IntVar(&menuItemQuantity, "quantity", 0, "Available quantity")
		c.Flags().BoolVar(&menuItemVegetarian, "vegetarian", false, "Vegetarian item")
		c.Flags().BoolVar(&menuItemAvailable, "available", true, "Item is available")
	}
}

func runMenuList(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	branch, err := requireVendorID(a, menuBranch)
	if err != nil {
		return err
	}

	fmt.Printf("📋 Fetching menu for branch %s...\n", branch)
	if err := a.Menu.Fetch(cmd.Context(), branch, api.MenuListOptions{
		Page:          menuPage,
		Size:          menuSize,
		Category:      menuCategory,
		AvailableOnly: menuAvailableOnly,
	}); err != nil {
		fmt.Printf("❌ %s\n", a.Menu.State().Err)
		return err
	}

	state := a.Menu.State()
	if len(state.Items) == 0 {
		fmt.Println("📭 No menu items found")
		return nil
	}

	fmt.Printf("\n🍽️  %d item(s):\n", len(state.Items))
	fmt.Println(strings.Repeat("─", 72))
	for _, item := range state.Items {
		availability := "✅"
		if !item.IsAvailable {
			availability = "🚫"
		}
		fmt.Printf("%s  #%s %-28s ₹%-8.2f %s\n", availability, item.ID, item.Name, item.Price, item.Category)
	}
	return nil
}

func runMenuAdd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	branch, err := requireVendorID(a, menuBranch)
	if err != nil {
		return err
	}

	item := menuItemFromFlags()
	if problems := mapping.ValidateFrontendMenuItem(item); len(problems) > 0 {
		for _, p := range problems {
			fmt.Printf("⚠️  %s\n", p)
		}
		return fmt.Errorf("menu item is not valid")
	}

	fmt.Printf("➕ Adding %q to branch %s...\n", item.Name, branch)
	created, err := a.Menu.Create(cmd.Context(), branch, item)
	if err != nil {
		fmt.Printf("❌ %s\n", a.Menu.State().Err)
		return err
	}
	fmt.Printf("✅ Created menu item #%s\n", created.ID)
	return nil
}

func runMenuUpdate(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	branch, err := requireVendorID(a, menuBranch)
	if err != nil {
		return err
	}

	item := menuItemFromFlags()
	item.ID = args[0]
	if problems := mapping.ValidateFrontendMenuItem(item); len(problems) > 0 {
		for _, p := range problems {
			fmt.Printf("⚠️  %s\n", p)
		}
		return fmt.Errorf("menu item is not valid")
	}

	fmt.Printf("✏️  Updating menu item #%s...\n", item.ID)
	updated, err := a.Menu.Update(cmd.Context(), branch, models.FrontendMenuItemWithCategory{FrontendMenuItem: item})
	if err != nil {
		fmt.Printf("❌ %s\n", a.Menu.State().Err)
		return err
	}
	fmt.Printf("✅ Updated %q\n", updated.Name)
	return nil
}

func runMenuDelete(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	fmt.Printf("🗑️  Deleting menu item #%s...\n", args[0])
	if err := a.Menu.Delete(cmd.Context(), args[0]); err != nil {
		fmt.Printf("❌ %s\n", a.Menu.State().Err)
		return err
	}
	fmt.Println("✅ Deleted")
	return nil
}

func menuItemFromFlags() models.FrontendMenuItem {
	return models.FrontendMenuItem{
		Name:            menuItemName,
		Description:     menuItemDescription,
		Price:           menuItemPrice,
		Category:        menuItemCategory,
		IsAvailable:     menuItemAvailable,
		IsVegetarian:    menuItemVegetarian,
		SpiceLevel:      models.SpiceLevel(menuItemSpice),
		PreparationTime: menuItemPrepTime,
		Quantity:        menuItemQuantity,
	}
}
