// Package mockapi is an in-memory stand-in for the partner backend. It serves
// the menu item and vendor endpoints with the same paths, envelopes, and
// error bodies as production, which makes it good enough for local
// development and end-to-end command testing without network access.
package mockapi

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nashtto/partnerctl/internal/models"
)

type Server struct {
	router *gin.Engine

	mu        sync.Mutex
	nextID    int
	menuItems []models.DatabaseMenuItem
	vendors   map[string]models.DatabaseRestaurant
}

// NewServer creates a mock backend with empty storage.
func NewServer() *Server {
	router := gin.Default()

	server := &Server{
		router:  router,
		nextID:  1,
		vendors: map[string]models.DatabaseRestaurant{},
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		api.POST("/menu-items/branches/:branchID", s.createMenuItem)
		api.GET("/menu-items/branches/:branchID", s.listMenuItems)
		api.GET("/menu-items/:id", s.getMenuItem)
		api.PUT("/menu-items/:id", s.updateMenuItem)
		api.DELETE("/menu-items/:id", s.deleteMenuItem)

		api.GET("/vendors/:id", s.getVendor)
		api.POST("/vendors", s.createVendor)
		api.PUT("/vendors/:id", s.updateVendor)
		api.POST("/vendors/:id/upload", s.uploadDocument)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "partner-backend-mock",
		"version": "0.1.0",
	})
}

func (s *Server) createMenuItem(c *gin.Context) {
	var item models.DatabaseMenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, "Request body is not valid JSON")
		return
	}
	if errs := menuItemErrors(item); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	s.mu.Lock()
	item.ID = s.allocateID()
	item.RestaurantID = c.Param("branchID")
	item.CreatedAt = now()
	item.UpdatedAt = item.CreatedAt
	normalizeMenuItem(&item)
	s.menuItems = append(s.menuItems, item)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, item)
}

func (s *Server) listMenuItems(c *gin.Context) {
	branchID := c.Param("branchID")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))
	category := c.Query("category")
	availableOnly := c.Query("availableOnly") == "true"
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 50
	}

	s.mu.Lock()
	matched := make([]models.DatabaseMenuItem, 0, len(s.menuItems))
	for _, item := range s.menuItems {
		if item.RestaurantID != branchID {
			continue
		}
		if availableOnly && !item.IsAvailable {
			continue
		}
		if category != "" && !strings.EqualFold(item.CategoryName, category) {
			continue
		}
		matched = append(matched, item)
	}
	s.mu.Unlock()

	total := len(matched)
	totalPages := (total + size - 1) / size
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, models.MenuItemPage{
		Content:       matched[start:end],
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          size,
		Number:        page,
		First:         page == 0,
		Last:          page >= totalPages-1,
	})
}

func (s *Server) getMenuItem(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.menuItems {
		if item.ID == c.Param("id") {
			c.JSON(http.StatusOK, item)
			return
		}
	}
	notFound(c, "Menu item not found")
}

func (s *Server) updateMenuItem(c *gin.Context) {
	var item models.DatabaseMenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, "Request body is not valid JSON")
		return
	}
	if errs := menuItemErrors(item); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menuItems {
		if s.menuItems[i].ID != c.Param("id") {
			continue
		}
		item.ID = s.menuItems[i].ID
		item.RestaurantID = s.menuItems[i].RestaurantID
		item.CreatedAt = s.menuItems[i].CreatedAt
		item.UpdatedAt = now()
		normalizeMenuItem(&item)
		s.menuItems[i] = item
		c.JSON(http.StatusOK, item)
		return
	}
	notFound(c, "Menu item not found")
}

func (s *Server) deleteMenuItem(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menuItems {
		if s.menuItems[i].ID == c.Param("id") {
			s.menuItems = append(s.menuItems[:i], s.menuItems[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	notFound(c, "Menu item not found")
}

func (s *Server) getVendor(c *gin.Context) {
	s.mu.Lock()
	vendor, ok := s.vendors[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		notFound(c, "Vendor not found")
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (s *Server) createVendor(c *gin.Context) {
	var vendor models.DatabaseRestaurant
	if err := c.ShouldBindJSON(&vendor); err != nil {
		badRequest(c, "Request body is not valid JSON")
		return
	}
	if errs := vendorErrors(vendor); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	s.mu.Lock()
	vendor.ID = s.allocateID()
	vendor.SubscriptionStatus = models.SubscriptionTrial
	vendor.CreatedAt = now()
	vendor.UpdatedAt = vendor.CreatedAt
	if vendor.LicenseDocuments == nil {
		vendor.LicenseDocuments = []string{}
	}
	s.vendors[vendor.ID] = vendor
	s.mu.Unlock()

	c.JSON(http.StatusCreated, vendor)
}

func (s *Server) updateVendor(c *gin.Context) {
	var vendor models.DatabaseRestaurant
	if err := c.ShouldBindJSON(&vendor); err != nil {
		badRequest(c, "Request body is not valid JSON")
		return
	}
	if errs := vendorErrors(vendor); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.vendors[c.Param("id")]
	if !ok {
		notFound(c, "Vendor not found")
		return
	}
	vendor.ID = stored.ID
	vendor.SubscriptionStatus = stored.SubscriptionStatus
	vendor.CreatedAt = stored.CreatedAt
	vendor.UpdatedAt = now()
	if vendor.LicenseDocuments == nil {
		vendor.LicenseDocuments = stored.LicenseDocuments
	}
	s.vendors[vendor.ID] = vendor
	c.JSON(http.StatusOK, vendor)
}

func (s *Server) uploadDocument(c *gin.Context) {
	vendorID := c.Param("id")
	file, err := c.FormFile("file")
	if err != nil {
		validationFailed(c, []string{"A file is required"})
		return
	}

	fileURL := "/uploads/vendors/" + vendorID + "/" + filepath.Base(file.Filename)

	s.mu.Lock()
	if vendor, ok := s.vendors[vendorID]; ok {
		vendor.LicenseDocuments = append(vendor.LicenseDocuments, fileURL)
		vendor.UpdatedAt = now()
		s.vendors[vendorID] = vendor
	}
	s.mu.Unlock()

	c.JSON(http.StatusCreated, models.UploadResult{
		FileURL:  fileURL,
		FileName: filepath.Base(file.Filename),
		FileType: strings.TrimPrefix(filepath.Ext(file.Filename), "."),
	})
}

// Seed loads a vendor with a small menu so commands have something to list.
func (s *Server) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	vendor := models.DatabaseRestaurant{
		ID:                 s.allocateID(),
		Name:               "Spice Garden",
		CuisineType:        "Indian",
		Description:        "Family kitchen serving North Indian classics",
		Address:            "12 MG Road, Bengaluru",
		Phone:              "+91 98765 43210",
		Email:              "owner@spicegarden.example",
		IsOpen:             true,
		OperatingHours:     map[string]models.DayHours{},
		LicenseDocuments:   []string{},
		OwnerID:            "550e8400-e29b-41d4-a716-446655440000",
		SubscriptionStatus: models.SubscriptionTrial,
		CreatedAt:          now(),
		UpdatedAt:          now(),
	}
	s.vendors[vendor.ID] = vendor

	seed := []models.DatabaseMenuItem{
		{Name: "Paneer Tikka", Description: "Char-grilled cottage cheese", Price: 220, CategoryName: "Appetizers", IsAvailable: true, IsVegetarian: true, SpiceLevel: models.SpiceMedium, PreparationTime: 20, Quantity: 40},
		{Name: "Butter Chicken", Description: "Tomato and cream gravy", Price: 340, CategoryName: "Main Course", IsAvailable: true, SpiceLevel: models.SpiceMild, PreparationTime: 30, Quantity: 25},
		{Name: "Masala Chai", Description: "Spiced milk tea", Price: 40, CategoryName: "Tea", IsAvailable: false, IsVegetarian: true, SpiceLevel: models.SpiceMild, PreparationTime: 5, Quantity: 100},
	}
	for _, item := range seed {
		item.ID = s.allocateID()
		item.RestaurantID = vendor.ID
		item.CreatedAt = now()
		item.UpdatedAt = item.CreatedAt
		normalizeMenuItem(&item)
		s.menuItems = append(s.menuItems, item)
	}
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// allocateID must be called with s.mu held.
func (s *Server) allocateID() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

func normalizeMenuItem(item *models.DatabaseMenuItem) {
	if item.Allergens == nil {
		item.Allergens = []string{}
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Addons == nil {
		item.Addons = []models.Addon{}
	}
	if item.ComplimentaryItems == nil {
		item.ComplimentaryItems = []models.ComplimentaryItem{}
	}
}

func menuItemErrors(item models.DatabaseMenuItem) []string {
	var errs []string
	if strings.TrimSpace(item.Name) == "" {
		errs = append(errs, "Menu item name is required")
	}
	if item.Price <= 0 {
		errs = append(errs, "Menu item price must be greater than 0")
	}
	return errs
}

func vendorErrors(vendor models.DatabaseRestaurant) []string {
	var errs []string
	if strings.TrimSpace(vendor.Name) == "" {
		errs = append(errs, "Restaurant name is required")
	}
	if strings.TrimSpace(vendor.Address) == "" {
		errs = append(errs, "Restaurant address is required")
	}
	return errs
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"code":    "BAD_REQUEST",
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": message,
		"code":    "NOT_FOUND",
	})
}

func validationFailed(c *gin.Context, errs []string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "Validation failed",
		"code":    "VALIDATION_ERROR",
		"errors":  errs,
	})
}
