package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nashtto/partnerctl/internal/app"
	"github.com/nashtto/partnerctl/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "partnerctl",
	Short: "Partnerctl - Restaurant Partner Management CLI",
	Long: `Partnerctl lets restaurant partners manage their storefront from the
terminal: sign in, maintain the menu, update restaurant details, upload
verification documents, and track orders.

It talks to the partner backend over HTTPS and keeps your session on disk,
so you stay signed in between invocations.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadApp builds the composition root every command starts from.
func loadApp() (*app.App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return app.New(cfg)
}

// requireVendorID resolves the branch/vendor to operate on: an explicit flag
// wins, otherwise the signed-in user's vendor is used.
func requireVendorID(a *app.App, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	state := a.Auth.State()
	if state.User != nil && state.User.RestaurantID != "" {
		return state.User.RestaurantID, nil
	}
	return "", fmt.Errorf("no vendor selected: pass --branch or sign in first")
}
