package store

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nashtto/partnerctl/internal/api"
	"github.com/nashtto/partnerctl/internal/mapping"
	"github.com/nashtto/partnerctl/internal/models"
)

// RestaurantState is a snapshot of the restaurant slice. The app manages a
// single restaurant at a time.
type RestaurantState struct {
	Restaurant *models.FrontendRestaurant
	IsLoading  bool
	Err        string
}

// RestaurantPatch is a shallow partial update applied to the restaurant.
type RestaurantPatch struct {
	Name           *string
	CuisineType    *string
	Description    *string
	Address        *string
	Phone          *string
	Email          *string
	IsOpen         *bool
	OperatingHours map[string]models.DayHours
}

// StaffPatch is a shallow partial update applied to one staff member.
type StaffPatch struct {
	Name  *string
	Role  *string
	Phone *string
	Email *string
}

// RestaurantStore owns the restaurant slice, including the embedded staff
// list.
type RestaurantStore struct {
	mu      sync.RWMutex
	state   RestaurantState
	vendors *api.VendorService
	log     *logrus.Logger
	flights inflight
}

// NewRestaurantStore creates a restaurant store over the vendor service.
func NewRestaurantStore(vendors *api.VendorService, log *logrus.Logger) *RestaurantStore {
	return &RestaurantStore{vendors: vendors, log: log}
}

// State returns a copy of the current slice state.
func (s *RestaurantStore) State() RestaurantState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.state
	if s.state.Restaurant != nil {
		restaurant := *s.state.Restaurant
		restaurant.Staff = append([]models.FrontendStaff(nil), s.state.Restaurant.Staff...)
		state.Restaurant = &restaurant
	}
	return state
}

// SetRestaurant replaces the slice's restaurant.
func (s *RestaurantStore) SetRestaurant(restaurant models.FrontendRestaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Restaurant = &restaurant
}

// ApplyPatch shallow-merges a patch into the current restaurant. A no-op when
// no restaurant is loaded.
func (s *RestaurantStore) ApplyPatch(patch RestaurantPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Restaurant == nil {
		return
	}
	restaurant := *s.state.Restaurant
	if patch.Name != nil {
		restaurant.Name = *patch.Name
	}
	if patch.CuisineType != nil {
		restaurant.CuisineType = *patch.CuisineType
	}
	if patch.Description != nil {
		restaurant.Description = *patch.Description
	}
	if patch.Address != nil {
		restaurant.Address = *patch.Address
	}
	if patch.Phone != nil {
		restaurant.Phone = *patch.Phone
	}
	if patch.Email != nil {
		restaurant.Email = *patch.Email
	}
	if patch.IsOpen != nil {
		restaurant.IsOpen = *patch.IsOpen
	}
	if patch.OperatingHours != nil {
		restaurant.OperatingHours = patch.OperatingHours
	}
	s.state.Restaurant = &restaurant
}

// AddStaff appends a staff member. A no-op when no restaurant is loaded.
func (s *RestaurantStore) AddStaff(staff models.FrontendStaff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Restaurant == nil {
		return
	}
	restaurant := *s.state.Restaurant
	restaurant.Staff = append(append([]models.FrontendStaff(nil), restaurant.Staff...), staff)
	s.state.Restaurant = &restaurant
}

// UpdateStaff shallow-merges a patch into the staff member with the given id.
func (s *RestaurantStore) UpdateStaff(id string, patch StaffPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Restaurant == nil {
		return
	}
	restaurant := *s.state.Restaurant
	staff := append([]models.FrontendStaff(nil), restaurant.Staff...)
	for i := range staff {
		if staff[i].ID != id {
			continue
		}
		if patch.Name != nil {
			staff[i].Name = *patch.Name
		}
		if patch.Role != nil {
			staff[i].Role = *patch.Role
		}
		if patch.Phone != nil {
			staff[i].Phone = *patch.Phone
		}
		if patch.Email != nil {
			staff[i].Email = *patch.Email
		}
		break
	}
	restaurant.Staff = staff
	s.state.Restaurant = &restaurant
}

// RemoveStaff filters out the staff member with the given id. Absent ids are
// a no-op.
func (s *RestaurantStore) RemoveStaff(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Restaurant == nil {
		return
	}
	restaurant := *s.state.Restaurant
	kept := make([]models.FrontendStaff, 0, len(restaurant.Staff))
	for _, member := range restaurant.Staff {
		if member.ID != id {
			kept = append(kept, member)
		}
	}
	restaurant.Staff = kept
	s.state.Restaurant = &restaurant
}

// Fetch loads the vendor record into the slice. Concurrent fetches for the
// same vendor collapse into a single request.
func (s *RestaurantStore) Fetch(ctx context.Context, vendorID string) error {
	return s.flights.do("fetch:"+vendorID, func() error {
		s.begin()
		vendor, err := s.vendors.GetVendor(ctx, vendorID)
		if err != nil {
			s.fail(err)
			return err
		}
		mapped := mapping.MapDatabaseRestaurantToFrontend(vendor, nil)
		s.mu.Lock()
		s.state.Restaurant = &mapped
		s.state.IsLoading = false
		s.mu.Unlock()
		return nil
	})
}

// Onboard registers the restaurant with the backend and stores the returned
// record.
func (s *RestaurantStore) Onboard(ctx context.Context, restaurant models.FrontendRestaurant, ownerID string) (models.FrontendRestaurant, error) {
	s.begin()
	created, err := s.vendors.CreateVendor(ctx, mapping.MapFrontendRestaurantToDatabase(restaurant, ownerID))
	if err != nil {
		s.fail(err)
		return models.FrontendRestaurant{}, err
	}
	mapped := mapping.MapDatabaseRestaurantToFrontend(created, restaurant.Staff)
	s.mu.Lock()
	s.state.Restaurant = &mapped
	s.state.IsLoading = false
	s.mu.Unlock()
	return mapped, nil
}

// Save pushes the current restaurant to the backend and stores the returned
// record.
func (s *RestaurantStore) Save(ctx context.Context, ownerID string) (models.FrontendRestaurant, error) {
	s.mu.RLock()
	current := s.state.Restaurant
	s.mu.RUnlock()
	if current == nil {
		err := &api.APIError{Message: "No restaurant loaded"}
		s.fail(err)
		return models.FrontendRestaurant{}, err
	}

	s.begin()
	updated, err := s.vendors.UpdateVendor(ctx, current.ID, mapping.MapFrontendRestaurantToDatabase(*current, ownerID))
	if err != nil {
		s.fail(err)
		return models.FrontendRestaurant{}, err
	}
	mapped := mapping.MapDatabaseRestaurantToFrontend(updated, current.Staff)
	s.mu.Lock()
	s.state.Restaurant = &mapped
	s.state.IsLoading = false
	s.mu.Unlock()
	return mapped, nil
}

// UploadDocument uploads a license document and records its stored URL on
// the restaurant.
func (s *RestaurantStore) UploadDocument(ctx context.Context, vendorID, fileName, documentType string, file io.Reader) (models.UploadResult, error) {
	s.begin()
	result, err := s.vendors.UploadDocument(ctx, vendorID, fileName, documentType, file)
	if err != nil {
		s.fail(err)
		return models.UploadResult{}, err
	}
	s.mu.Lock()
	if s.state.Restaurant != nil {
		restaurant := *s.state.Restaurant
		restaurant.LicenseDocuments = append(append([]string(nil), restaurant.LicenseDocuments...), result.FileURL)
		s.state.Restaurant = &restaurant
	}
	s.state.IsLoading = false
	s.mu.Unlock()
	return result, nil
}

func (s *RestaurantStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = true
	s.state.Err = ""
}

func (s *RestaurantStore) fail(err error) {
	s.log.WithError(err).Warn("restaurant operation failed")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	s.state.Err = errorMessage(err)
}
