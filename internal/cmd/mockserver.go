package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nashtto/partnerctl/internal/config"
	"github.com/nashtto/partnerctl/internal/mockapi"
)

var mockSeed bool

var mockserverCmd = &cobra.Command{
	Use:   "mockserver",
	Short: "Run an in-memory partner backend",
	Long: `Run a local mock of the partner backend. It serves the same menu and
vendor endpoints as production against in-memory storage, which makes it
useful for trying out commands without a real account.

Point the CLI at it with PARTNERCTL_API_BASE_URL=http://localhost:8080/api.`,
	RunE: runMockServer,
}

func init() {
	rootCmd.AddCommand(mockserverCmd)

	mockserverCmd.Flags().BoolVar(&mockSeed, "seed", false, "Preload a demo vendor and menu")
}

func runMockServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Mock backend starting...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	srv := mockapi.NewServer()
	if mockSeed {
		srv.Seed()
		fmt.Println("🌱 Seeded demo vendor and menu")
	}

	fmt.Printf("🌐 Listening on %s...\n", cfg.Mock.Addr)
	if err := srv.Start(cfg.Mock.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
