package models

// Wire envelopes consumed from the backend.

// MenuItemPage is the paginated menu item listing. Page numbering is
// zero-based with an explicit size.
type MenuItemPage struct {
	Content       []DatabaseMenuItem `json:"content"`
	TotalElements int                `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
	Size          int                `json:"size"`
	Number        int                `json:"number"`
	First         bool               `json:"first"`
	Last          bool               `json:"last"`
}

// UploadResult is returned by the vendor document upload endpoint.
type UploadResult struct {
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type,omitempty"`
}

// AuthTokens is the credential pair issued on login.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

// UserProfile is the authenticated user's profile as persisted locally.
type UserProfile struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone,omitempty"`
	VendorID string   `json:"vendorId,omitempty"`
	Roles    []string `json:"roles"`
}

// LoginResponse bundles the profile and tokens returned by a login.
type LoginResponse struct {
	User   UserProfile `json:"user"`
	Tokens AuthTokens  `json:"tokens"`
}

// StatWindow compares today's value against yesterday's.
type StatWindow struct {
	Today     float64 `json:"today"`
	Yesterday float64 `json:"yesterday"`
	Growth    float64 `json:"growth"`
}

// DashboardStats is the planned dashboard summary payload.
type DashboardStats struct {
	Revenue       StatWindow `json:"revenue"`
	Orders        StatWindow `json:"orders"`
	AvgOrderValue StatWindow `json:"avgOrderValue"`
	ActiveItems   int        `json:"activeItems"`
}

// TopItem is one row of the planned best-sellers report.
type TopItem struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}
