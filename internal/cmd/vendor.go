package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nashtto/partnerctl/internal/flags"
	"github.com/nashtto/partnerctl/internal/store"
)

var (
	vendorID           string
	vendorName         string
	vendorCuisine      string
	vendorDescription  string
	vendorAddress      string
	vendorPhone        string
	vendorEmail        string
	vendorOpen         bool
	vendorDocumentPath string
	vendorDocumentType string
)

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Manage your restaurant profile",
}

var vendorShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the restaurant profile",
	RunE:  runVendorShow,
}

var vendorUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update restaurant details",
	RunE:  runVendorUpdate,
}

var vendorUploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a license or verification document",
	RunE:  runVendorUpload,
}

func init() {
	rootCmd.AddCommand(vendorCmd)
	vendorCmd.AddCommand(vendorShowCmd)
	vendorCmd.AddCommand(vendorUpdateCmd)
	vendorCmd.AddCommand(vendorUploadCmd)

	vendorCmd.PersistentFlags().StringVar(&vendorID, "id", "", "Vendor id (defaults to your vendor)")

	vendorUpdateCmd.Flags().StringVar(&vendorName, "name", "", "Restaurant name")
	vendorUpdateCmd.Flags().StringVar(&vendorCuisine, "cuisine", "", "Cuisine type")
	vendorUpdateCmd.Flags().StringVar(&vendorDescription, "description", "", "Restaurant description")
	vendorUpdateCmd.Flags().StringVar(&vendorAddress, "address", "", "Restaurant address")
	vendorUpdateCmd.Flags().StringVar(&vendorPhone, "phone", "", "Contact phone")
	vendorUpdateCmd.Flags().StringVar(&vendorEmail, "email", "", "Contact email")
	vendorUpdateCmd.Flags().BoolVar(&vendorOpen, "open", true, "Restaurant is accepting orders")

	vendorUploadCmd.Flags().StringVar(&vendorDocumentPath, "file", "", "Path to the document")
	vendorUploadCmd.Flags().StringVar(&vendorDocumentType, "type", "license", "Document type")
}

func runVendorShow(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	id, err := requireVendorID(a, vendorID)
	if err != nil {
		return err
	}

	fmt.Printf("🏪 Fetching vendor %s...\n", id)
	if err := a.Restaurant.Fetch(cmd.Context(), id); err != nil {
		fmt.Printf("❌ %s\n", a.Restaurant.State().Err)
		return err
	}

	r := a.Restaurant.State().Restaurant
	openState := "🟢 open"
	if !r.IsOpen {
		openState = "🔴 closed"
	}
	fmt.Printf("\n🏷️  %s (%s) — %s\n", r.Name, r.CuisineType, openState)
	fmt.Printf("📍 %s\n", r.Address)
	fmt.Printf("📞 %s | ✉️  %s\n", r.Phone, r.Email)
	if r.Description != "" {
		fmt.Printf("📝 %s\n", r.Description)
	}
	if len(r.LicenseDocuments) > 0 {
		fmt.Printf("📄 Documents: %s\n", strings.Join(r.LicenseDocuments, ", "))
	}
	if len(r.Staff) > 0 {
		fmt.Printf("👥 Staff: %d member(s)\n", len(r.Staff))
	}
	return nil
}

func runVendorUpdate(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	id, err := requireVendorID(a, vendorID)
	if err != nil {
		return err
	}

	fmt.Printf("🏪 Loading vendor %s...\n", id)
	if err := a.Restaurant.Fetch(cmd.Context(), id); err != nil {
		fmt.Printf("❌ %s\n", a.Restaurant.State().Err)
		return err
	}

	patch := store.RestaurantPatch{}
	if cmd.Flags().Changed("name") {
		patch.Name = &vendorName
	}
	if cmd.Flags().Changed("cuisine") {
		patch.CuisineType = &vendorCuisine
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &vendorDescription
	}
	if cmd.Flags().Changed("address") {
		patch.Address = &vendorAddress
	}
	if cmd.Flags().Changed("phone") {
		patch.Phone = &vendorPhone
	}
	if cmd.Flags().Changed("email") {
		patch.Email = &vendorEmail
	}
	if cmd.Flags().Changed("open") {
		patch.IsOpen = &vendorOpen
	}
	a.Restaurant.ApplyPatch(patch)

	ownerID := ""
	if user := a.Auth.State().User; user != nil {
		ownerID = user.ID
	}

	fmt.Println("✏️  Saving changes...")
	saved, err := a.Restaurant.Save(cmd.Context(), ownerID)
	if err != nil {
		fmt.Printf("❌ %s\n", a.Restaurant.State().Err)
		return err
	}
	fmt.Printf("✅ Saved %q\n", saved.Name)
	return nil
}

func runVendorUpload(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	if !a.Flags.IsEnabled(flags.DocumentUpload) {
		fmt.Println("🚫 Document upload is disabled by configuration")
		return nil
	}
	id, err := requireVendorID(a, vendorID)
	if err != nil {
		return err
	}
	if vendorDocumentPath == "" {
		return fmt.Errorf("--file is required")
	}

	file, err := os.Open(vendorDocumentPath)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	fmt.Printf("📤 Uploading %s...\n", filepath.Base(vendorDocumentPath))
	result, err := a.Restaurant.UploadDocument(cmd.Context(), id, filepath.Base(vendorDocumentPath), vendorDocumentType, file)
	if err != nil {
		fmt.Printf("❌ %s\n", a.Restaurant.State().Err)
		return err
	}
	fmt.Printf("✅ Stored at %s\n", result.FileURL)
	return nil
}
