// Package flags holds the feature toggles the app consults before exposing
// optional functionality. The service is constructed and owned by the
// composition root; there is no package-level singleton.
package flags

import (
	"sort"
	"sync"
)

// Feature names.
const (
	ImageUpload      = "imageUpload"
	DocumentUpload   = "documentUpload"
	Notifications    = "notifications"
	VoiceOrders      = "voiceOrders"
	Analytics        = "analytics"
	MultiLocation    = "multiLocation"
	StaffManagement  = "staffManagement"
	CustomMenuThemes = "customMenuThemes"
)

// Defaults returns the flag set used before any configuration is applied.
func Defaults() map[string]bool {
	return map[string]bool{
		ImageUpload:      true,
		DocumentUpload:   true,
		Notifications:    true,
		VoiceOrders:      true,
		Analytics:        true,
		MultiLocation:    true,
		StaffManagement:  true,
		CustomMenuThemes: true,
	}
}

// Service answers feature flag queries.
type Service struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewService creates a flag service from the defaults merged with the given
// overrides (config wins over defaults).
func NewService(overrides map[string]bool) *Service {
	flags := Defaults()
	for name, enabled := range overrides {
		flags[name] = enabled
	}
	return &Service{flags: flags}
}

// IsEnabled reports whether a feature is on. Unknown features are off.
func (s *Service) IsEnabled(feature string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[feature]
}

// Enable turns a feature on.
func (s *Service) Enable(feature string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[feature] = true
}

// Disable turns a feature off.
func (s *Service) Disable(feature string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[feature] = false
}

// Enabled returns the sorted names of all enabled features.
func (s *Service) Enabled() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var names []string
	for name, enabled := range s.flags {
		if enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
