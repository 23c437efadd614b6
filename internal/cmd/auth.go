package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the partner backend",
	Long: `Sign in with your partner account. On success the session is stored
under your home directory and reused by every other command until you
log out.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in partner account",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	fmt.Printf("🔐 Signing in as %s...\n", loginEmail)
	if err := a.Auth.Login(cmd.Context(), loginEmail, loginPassword); err != nil {
		fmt.Printf("❌ %s\n", a.Auth.State().Err)
		return err
	}

	state := a.Auth.State()
	fmt.Printf("✅ Signed in as %s\n", state.User.Name)
	if state.User.RestaurantID != "" {
		fmt.Printf("🏪 Vendor: %s\n", state.User.RestaurantID)
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	if err := a.Auth.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Println("👋 Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	state := a.Auth.State()
	if !state.IsAuthenticated || state.User == nil {
		fmt.Println("📭 Not signed in. Run: partnerctl login --email <email> --password <password>")
		return nil
	}

	fmt.Printf("👤 %s <%s>\n", state.User.Name, state.User.Email)
	if state.User.RestaurantID != "" {
		fmt.Printf("🏪 Vendor: %s\n", state.User.RestaurantID)
	}
	fmt.Printf("🚩 Enabled features: %s\n", strings.Join(a.Flags.Enabled(), ", "))
	return nil
}
