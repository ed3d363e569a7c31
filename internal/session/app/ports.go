package app

import (
	"context"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/domain"
)

// AuthAPI is the backend's account surface. The rest implementation lives in
// infra/rest; tests substitute fakes.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.User, domain.TokenPair, error)
	Register(ctx context.Context, reg domain.Registration) (domain.User, domain.TokenPair, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error)
	Me(ctx context.Context, accessToken string) (domain.User, error)
	UpdateProfile(ctx context.Context, accessToken string, patch domain.ProfilePatch) (domain.User, error)
	ChangePassword(ctx context.Context, accessToken, current, next string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	CheckAvailability(ctx context.Context, field, value string) (bool, error)
}

// Storage is the durable mirror of the session (browser local storage in the
// web client, a state directory here). Implementations must treat each key
// write as atomic.
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
