// Package store holds the app's state slices: one mutex-guarded container per
// entity domain (auth, restaurant, menu, orders), each owning its data
// exclusively. Synchronous mutations key on identifiers and commute safely;
// asynchronous operations follow a uniform three-phase contract — loading set
// and error cleared on entry, then exactly one of: the mapped response
// applied, or the failure message captured into Err. Persistence-shape data
// never enters a slice; responses are mapped to app shapes first.
package store

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nashtto/partnerctl/internal/api"
	"github.com/nashtto/partnerctl/internal/mapping"
	"github.com/nashtto/partnerctl/internal/models"
)

// fallbackError is stored when a failure carries no message of its own.
const fallbackError = "Something went wrong. Please try again."

// MenuState is a snapshot of the menu slice.
type MenuState struct {
	Items            []models.FrontendMenuItemWithCategory
	Categories       []string
	SelectedCategory string
	IsLoading        bool
	Err              string
}

// MenuItemPatch is a shallow partial update applied to one menu item. Nil
// fields are left untouched.
type MenuItemPatch struct {
	Name            *string
	Description     *string
	Price           *float64
	Category        *string
	IsAvailable     *bool
	Quantity        *int
	SpiceLevel      *models.SpiceLevel
	PreparationTime *int
}

// MenuStore owns the menu item slice.
type MenuStore struct {
	mu      sync.RWMutex
	state   MenuState
	menus   *api.MenuService
	log     *logrus.Logger
	flights inflight
}

// NewMenuStore creates a menu store over the given menu service.
func NewMenuStore(menus *api.MenuService, log *logrus.Logger) *MenuStore {
	return &MenuStore{
		state: MenuState{
			Items:            []models.FrontendMenuItemWithCategory{},
			Categories:       []string{"All", "Appetizers", "Main Course", "Desserts", "Beverages", "Snacks", "Tea", "Coffee"},
			SelectedCategory: "All",
		},
		menus: menus,
		log:   log,
	}
}

// State returns a copy of the current slice state.
func (s *MenuStore) State() MenuState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.state
	state.Items = append([]models.FrontendMenuItemWithCategory(nil), s.state.Items...)
	state.Categories = append([]string(nil), s.state.Categories...)
	return state
}

// SetItems replaces the whole item list.
func (s *MenuStore) SetItems(items []models.FrontendMenuItemWithCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if items == nil {
		items = []models.FrontendMenuItemWithCategory{}
	}
	s.state.Items = items
}

// AddItem appends one item.
func (s *MenuStore) AddItem(item models.FrontendMenuItemWithCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Items = append(s.state.Items, item)
}

// ApplyItemPatch shallow-merges a patch into the item with the given id.
// Unknown ids are a no-op.
func (s *MenuStore) ApplyItemPatch(id string, patch MenuItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := append([]models.FrontendMenuItemWithCategory(nil), s.state.Items...)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if patch.Name != nil {
			items[i].Name = *patch.Name
		}
		if patch.Description != nil {
			items[i].Description = *patch.Description
		}
		if patch.Price != nil {
			items[i].Price = *patch.Price
		}
		if patch.Category != nil {
			items[i].Category = *patch.Category
		}
		if patch.IsAvailable != nil {
			items[i].IsAvailable = *patch.IsAvailable
		}
		if patch.Quantity != nil {
			items[i].Quantity = *patch.Quantity
		}
		if patch.SpiceLevel != nil {
			items[i].SpiceLevel = *patch.SpiceLevel
		}
		if patch.PreparationTime != nil {
			items[i].PreparationTime = *patch.PreparationTime
		}
		break
	}
	s.state.Items = items
}

// RemoveItem filters out the item with the given id. Absent ids are a no-op.
func (s *MenuStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]models.FrontendMenuItemWithCategory, 0, len(s.state.Items))
	for _, item := range s.state.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.state.Items = kept
}

// SetCategories replaces the category list.
func (s *MenuStore) SetCategories(categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Categories = categories
}

// SelectCategory sets the active category filter.
func (s *MenuStore) SelectCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedCategory = category
}

// Fetch loads one page of the branch menu into the slice. Concurrent fetches
// for the same branch collapse into a single request.
func (s *MenuStore) Fetch(ctx context.Context, branchID string, opts api.MenuListOptions) error {
	return s.flights.do("fetch:"+branchID, func() error {
		s.begin()
		page, err := s.menus.ListBranchMenuItems(ctx, branchID, opts)
		if err != nil {
			s.fail(err)
			return err
		}
		mapped := mapping.MapDatabaseMenuItemsToFrontend(page.Content, nil)
		s.mu.Lock()
		s.state.Items = mapped
		s.state.IsLoading = false
		s.mu.Unlock()
		return nil
	})
}

// Create sends a new item to the backend and appends the stored version.
func (s *MenuStore) Create(ctx context.Context, branchID string, item models.FrontendMenuItem) (models.FrontendMenuItemWithCategory, error) {
	s.begin()
	created, err := s.menus.CreateMenuItem(ctx, branchID, mapping.MapFrontendMenuItemToDatabase(item, branchID, ""))
	if err != nil {
		s.fail(err)
		return models.FrontendMenuItemWithCategory{}, err
	}
	mapped := mapping.MapDatabaseMenuItemToFrontend(created, created.CategoryName)
	s.mu.Lock()
	s.state.Items = append(append([]models.FrontendMenuItemWithCategory(nil), s.state.Items...), mapped)
	s.state.IsLoading = false
	s.mu.Unlock()
	return mapped, nil
}

// Update replaces an item on the backend and swaps the stored version into
// the slice by id.
func (s *MenuStore) Update(ctx context.Context, branchID string, item models.FrontendMenuItemWithCategory) (models.FrontendMenuItemWithCategory, error) {
	s.begin()
	payload := mapping.MapFrontendMenuItemToDatabase(item.FrontendMenuItem, branchID, item.CategoryID)
	updated, err := s.menus.UpdateMenuItem(ctx, item.ID, payload)
	if err != nil {
		s.fail(err)
		return models.FrontendMenuItemWithCategory{}, err
	}
	mapped := mapping.MapDatabaseMenuItemToFrontend(updated, updated.CategoryName)
	s.mu.Lock()
	items := append([]models.FrontendMenuItemWithCategory(nil), s.state.Items...)
	for i := range items {
		if items[i].ID == mapped.ID {
			items[i] = mapped
			break
		}
	}
	s.state.Items = items
	s.state.IsLoading = false
	s.mu.Unlock()
	return mapped, nil
}

// Delete removes an item on the backend, then from the slice. Removal is a
// no-op when the id is not present locally.
func (s *MenuStore) Delete(ctx context.Context, menuItemID string) error {
	s.begin()
	if err := s.menus.DeleteMenuItem(ctx, menuItemID); err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.state.IsLoading = false
	s.mu.Unlock()
	s.RemoveItem(menuItemID)
	return nil
}

func (s *MenuStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = true
	s.state.Err = ""
}

func (s *MenuStore) fail(err error) {
	msg := fallbackError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	s.log.WithError(err).Warn("menu operation failed")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	s.state.Err = msg
}
