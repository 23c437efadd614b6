package store

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nashtto/partnerctl/internal/api"
	"github.com/nashtto/partnerctl/internal/mockapi"
	"github.com/nashtto/partnerctl/internal/models"
)

func newRestaurantStore(t *testing.T) (*RestaurantStore, func()) {
	t.Helper()
	backend := mockapi.NewServer()
	server := httptest.NewServer(backend.Handler())
	client := api.NewClient(server.URL+"/api", 0, nil, testLogger())
	return NewRestaurantStore(api.NewVendorService(client), testLogger()), server.Close
}

func testRestaurant() models.FrontendRestaurant {
	return models.FrontendRestaurant{
		Name:        "Spice Garden",
		CuisineType: "Indian",
		Address:     "12 MG Road, Bengaluru",
		Phone:       "+91 98765 43210",
		Email:       "owner@spicegarden.example",
		IsOpen:      true,
	}
}

func TestOnboardAndFetch(t *testing.T) {
	store, done := newRestaurantStore(t)
	defer done()
	ctx := context.Background()

	created, err := store.Onboard(ctx, testRestaurant(), "owner-1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Spice Garden", created.Name)

	require.NoError(t, store.Fetch(ctx, created.ID))

	state := store.State()
	require.NotNil(t, state.Restaurant)
	assert.Equal(t, created.ID, state.Restaurant.ID)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Err)
}

func TestSaveRoundTrip(t *testing.T) {
	store, done := newRestaurantStore(t)
	defer done()
	ctx := context.Background()

	created, err := store.Onboard(ctx, testRestaurant(), "owner-1")
	require.NoError(t, err)

	name := "Spice Garden Deluxe"
	store.ApplyPatch(RestaurantPatch{Name: &name})

	saved, err := store.Save(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, saved.ID)
	assert.Equal(t, "Spice Garden Deluxe", saved.Name)

	require.NoError(t, store.Fetch(ctx, created.ID))
	assert.Equal(t, "Spice Garden Deluxe", store.State().Restaurant.Name)
}

func TestSaveWithoutRestaurant(t *testing.T) {
	store, done := newRestaurantStore(t)
	defer done()

	_, err := store.Save(context.Background(), "owner-1")
	require.Error(t, err)
	assert.Equal(t, "No restaurant loaded", store.State().Err)
}

func TestOnboardValidationFailure(t *testing.T) {
	store, done := newRestaurantStore(t)
	defer done()

	_, err := store.Onboard(context.Background(), models.FrontendRestaurant{}, "owner-1")
	require.Error(t, err)

	state := store.State()
	assert.Contains(t, state.Err, "Restaurant name is required")
	assert.Nil(t, state.Restaurant)
}

func TestUploadDocumentAppendsURL(t *testing.T) {
	store, done := newRestaurantStore(t)
	defer done()
	ctx := context.Background()

	created, err := store.Onboard(ctx, testRestaurant(), "owner-1")
	require.NoError(t, err)

	result, err := store.UploadDocument(ctx, created.ID, "fssai.pdf", "license", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/vendors/"+created.ID+"/fssai.pdf", result.FileURL)

	state := store.State()
	require.NotNil(t, state.Restaurant)
	assert.Contains(t, state.Restaurant.LicenseDocuments, result.FileURL)
}

func TestStaffMutations(t *testing.T) {
	store, done := newRestaurantStore(t)
	defer done()

	store.SetRestaurant(testRestaurant())

	store.AddStaff(models.FrontendStaff{ID: "s1", Name: "Asha", Role: "manager"})
	store.AddStaff(models.FrontendStaff{ID: "s2", Name: "Ravi", Role: "chef"})
	require.Len(t, store.State().Restaurant.Staff, 2)

	role := "head chef"
	store.UpdateStaff("s2", StaffPatch{Role: &role})
	staff := store.State().Restaurant.Staff
	assert.Equal(t, "head chef", staff[1].Role)
	assert.Equal(t, "Ravi", staff[1].Name, "untouched fields survive")

	store.RemoveStaff("s1")
	store.RemoveStaff("s1")
	staff = store.State().Restaurant.Staff
	require.Len(t, staff, 1)
	assert.Equal(t, "s2", staff[0].ID)
}

func TestStaffMutationsWithoutRestaurant(t *testing.T) {
	store, done := newRestaurantStore(t)
	defer done()

	// No restaurant loaded: all staff mutations are no-ops, not panics.
	store.AddStaff(models.FrontendStaff{ID: "s1"})
	store.RemoveStaff("s1")
	name := "x"
	store.UpdateStaff("s1", StaffPatch{Name: &name})
	store.ApplyPatch(RestaurantPatch{Name: &name})

	assert.Nil(t, store.State().Restaurant)
}

func TestApplyPatchMergesFields(t *testing.T) {
	store, done := newRestaurantStore(t)
	defer done()
	store.SetRestaurant(testRestaurant())

	closed := false
	desc := "Now with a rooftop"
	store.ApplyPatch(RestaurantPatch{IsOpen: &closed, Description: &desc})

	r := store.State().Restaurant
	assert.False(t, r.IsOpen)
	assert.Equal(t, "Now with a rooftop", r.Description)
	assert.Equal(t, "Spice Garden", r.Name, "unset patch fields leave values alone")
}
