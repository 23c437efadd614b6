package api

import (
	"context"
	"io"

	"github.com/nashtto/partnerctl/internal/models"
)

// VendorService wraps the vendor (restaurant) endpoints.
type VendorService struct {
	client *Client
}

// NewVendorService creates a vendor service over the given transport client.
func NewVendorService(client *Client) *VendorService {
	return &VendorService{client: client}
}

// GetVendor fetches a vendor record by id.
func (s *VendorService) GetVendor(ctx context.Context, vendorID string) (models.DatabaseRestaurant, error) {
	var vendor models.DatabaseRestaurant
	err := s.client.Get(ctx, "/vendors/"+vendorID, &vendor)
	return vendor, err
}

// CreateVendor registers a new vendor and returns the stored record.
func (s *VendorService) CreateVendor(ctx context.Context, vendor models.DatabaseRestaurant) (models.DatabaseRestaurant, error) {
	var created models.DatabaseRestaurant
	err := s.client.Post(ctx, "/vendors", vendor, &created)
	return created, err
}

// UpdateVendor replaces a vendor record and returns the stored version.
func (s *VendorService) UpdateVendor(ctx context.Context, vendorID string, vendor models.DatabaseRestaurant) (models.DatabaseRestaurant, error) {
	var updated models.DatabaseRestaurant
	err := s.client.Put(ctx, "/vendors/"+vendorID, vendor, &updated)
	return updated, err
}

// UploadDocument uploads a license or verification document for a vendor via
// multipart POST and returns the stored file reference.
func (s *VendorService) UploadDocument(ctx context.Context, vendorID, fileName, documentType string, file io.Reader) (models.UploadResult, error) {
	fields := map[string]string{}
	if documentType != "" {
		fields["document_type"] = documentType
	}
	var result models.UploadResult
	err := s.client.Upload(ctx, "/vendors/"+vendorID+"/upload", fileName, file, fields, &result)
	return result, err
}

// ListDocuments is not available server-side yet.
func (s *VendorService) ListDocuments(ctx context.Context, vendorID string) ([]models.UploadResult, error) {
	return nil, &UnsupportedError{Feature: "Document management"}
}

// DeleteDocument is not available server-side yet.
func (s *VendorService) DeleteDocument(ctx context.Context, documentID string) error {
	return &UnsupportedError{Feature: "Document management"}
}

// CheckAvailability is not available server-side yet.
func (s *VendorService) CheckAvailability(ctx context.Context, vendorID string) (bool, error) {
	return false, &UnsupportedError{Feature: "Branch availability checks"}
}
