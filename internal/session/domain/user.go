package domain

import "time"

// User is the backend's profile record. The client only caches it for display
// and form auto-fill; the backend owns every field.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone"`
	CompanyName   string    `json:"company_name"`
	BusinessType  string    `json:"business_type"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	ProfileImage  string    `json:"profile_image"`
	EmailVerified bool      `json:"email_verified"`
	PhoneVerified bool      `json:"phone_verified"`
	IsStaff       bool      `json:"is_staff"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TokenPair is the bearer credential set. Access is short-lived and sent on
// every authenticated call; Refresh mints replacement access tokens. The pair
// lives and dies together: a failed refresh clears both alongside the user.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Snapshot is the session state handed to dependent stores. Epoch increments
// on every authenticated/unauthenticated transition so a response issued
// under an older session can be detected and dropped at apply time.
type Snapshot struct {
	User        *User
	AccessToken string
	Epoch       uint64
}

func (s Snapshot) Authenticated() bool {
	return s.User != nil && s.AccessToken != ""
}

// Registration is the superset of profile fields accepted at signup.
type Registration struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
}

// ProfilePatch carries only the fields the user changed. Pointers distinguish
// "leave alone" from "set to empty".
type ProfilePatch struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	CompanyName  *string `json:"company_name,omitempty"`
	BusinessType *string `json:"business_type,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	Country      *string `json:"country,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}
