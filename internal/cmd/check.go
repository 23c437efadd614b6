package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check-backend",
	Short: "Check connectivity to the partner backend",
	Long: `Ping the partner backend's health endpoint and report which feature
areas are enabled. Useful to verify your configuration before using the
other commands.`,
	RunE: runCheckBackend,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheckBackend(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	fmt.Printf("🔍 Checking backend at %s...\n", a.Config.API.BaseURL)
	if a.Client.HealthCheck(cmd.Context()) {
		fmt.Println("✅ Backend is reachable")
	} else {
		fmt.Println("❌ Backend did not answer its health endpoint")
		fmt.Println("💡 Try the local mock: partnerctl mockserver --seed")
	}

	if state := a.Auth.State(); state.IsAuthenticated {
		fmt.Printf("🔐 Session: signed in as %s\n", state.User.Email)
	} else {
		fmt.Println("🔐 Session: not signed in")
	}
	fmt.Printf("🚩 Enabled features: %s\n", strings.Join(a.Flags.Enabled(), ", "))
	return nil
}
