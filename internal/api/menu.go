package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nashtto/partnerctl/internal/models"
)

// MenuService wraps the menu item endpoints.
type MenuService struct {
	client *Client
}

// NewMenuService creates a menu service over the given transport client.
func NewMenuService(client *Client) *MenuService {
	return &MenuService{client: client}
}

// MenuListOptions filters a branch menu listing. Page is zero-based.
type MenuListOptions struct {
	Page          int
	Size          int
	Category      string
	AvailableOnly bool
}

// CreateMenuItem creates a menu item under the given branch and returns the
// stored record.
func (s *MenuService) CreateMenuItem(ctx context.Context, branchID string, item models.DatabaseMenuItem) (models.DatabaseMenuItem, error) {
	var created models.DatabaseMenuItem
	err := s.client.Post(ctx, fmt.Sprintf("/menu-items/branches/%s", branchID), item, &created)
	return created, err
}

// ListBranchMenuItems fetches one page of a branch's menu.
func (s *MenuService) ListBranchMenuItems(ctx context.Context, branchID string, opts MenuListOptions) (models.MenuItemPage, error) {
	if opts.Size <= 0 {
		opts.Size = 50
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(opts.Page))
	params.Set("size", strconv.Itoa(opts.Size))
	params.Set("availableOnly", strconv.FormatBool(opts.AvailableOnly))
	if opts.Category != "" {
		params.Set("category", opts.Category)
	}

	var page models.MenuItemPage
	err := s.client.Get(ctx, fmt.Sprintf("/menu-items/branches/%s?%s", branchID, params.Encode()), &page)
	return page, err
}

// GetMenuItem fetches a single menu item by id.
func (s *MenuService) GetMenuItem(ctx context.Context, menuItemID string) (models.DatabaseMenuItem, error) {
	var item models.DatabaseMenuItem
	err := s.client.Get(ctx, "/menu-items/"+menuItemID, &item)
	return item, err
}

// UpdateMenuItem replaces a menu item and returns the stored record.
func (s *MenuService) UpdateMenuItem(ctx context.Context, menuItemID string, item models.DatabaseMenuItem) (models.DatabaseMenuItem, error) {
	var updated models.DatabaseMenuItem
	err := s.client.Put(ctx, "/menu-items/"+menuItemID, item, &updated)
	return updated, err
}

// DeleteMenuItem removes a menu item by id.
func (s *MenuService) DeleteMenuItem(ctx context.Context, menuItemID string) error {
	return s.client.Delete(ctx, "/menu-items/"+menuItemID, nil)
}

// The endpoints below are planned but not served by the backend yet. Each
// returns a typed UnsupportedError so callers handle the gap explicitly.

// SearchMenuItems is not available server-side yet.
func (s *MenuService) SearchMenuItems(ctx context.Context, branchID, query string, page, size int) (models.MenuItemPage, error) {
	return models.MenuItemPage{}, &UnsupportedError{Feature: "Menu search"}
}

// ListCategories is not available server-side yet.
func (s *MenuService) ListCategories(ctx context.Context, branchID string) ([]string, error) {
	return nil, &UnsupportedError{Feature: "Menu categories"}
}

// BulkUpdateAvailability is not available server-side yet.
func (s *MenuService) BulkUpdateAvailability(ctx context.Context, menuItemIDs []string, available bool) error {
	return &UnsupportedError{Feature: "Bulk availability updates"}
}

// DuplicateMenuItem is not available server-side yet.
func (s *MenuService) DuplicateMenuItem(ctx context.Context, menuItemID, newName string) (models.DatabaseMenuItem, error) {
	return models.DatabaseMenuItem{}, &UnsupportedError{Feature: "Menu item duplication"}
}

// PopularMenuItems is not available server-side yet.
func (s *MenuService) PopularMenuItems(ctx context.Context, branchID, period string, limit int) ([]models.DatabaseMenuItem, error) {
	return nil, &UnsupportedError{Feature: "Menu analytics"}
}
