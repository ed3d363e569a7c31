// Package rest adapts the backend's account endpoints to the session store's
// AuthAPI port.
package rest

import (
	"context"
	"net/url"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/domain"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/pkg/rest"
)

type AuthAPI struct {
	client *rest.Client
}

func NewAuthAPI(client *rest.Client) *AuthAPI {
	return &AuthAPI{client: client}
}

// authPayload is the shape of login and register responses: the profile plus
// a flat token pair.
type authPayload struct {
	User    domain.User `json:"user"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (domain.User, domain.TokenPair, error) {
	body := map[string]string{"email": email, "password": password}
	var out authPayload
	if err := a.client.Post(ctx, "/accounts/login/", "", body, &out); err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}
	return out.User, domain.TokenPair{Access: out.Access, Refresh: out.Refresh}, nil
}

func (a *AuthAPI) Register(ctx context.Context, reg domain.Registration) (domain.User, domain.TokenPair, error) {
	var out authPayload
	if err := a.client.Post(ctx, "/accounts/register/", "", reg, &out); err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}
	return out.User, domain.TokenPair{Access: out.Access, Refresh: out.Refresh}, nil
}

func (a *AuthAPI) Logout(ctx context.Context, accessToken, refreshToken string) error {
	body := map[string]string{"refresh": refreshToken}
	return a.client.Post(ctx, "/accounts/logout/", accessToken, body, nil)
}

func (a *AuthAPI) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	body := map[string]string{"refresh": refreshToken}
	var out domain.TokenPair
	if err := a.client.Post(ctx, "/auth/token/refresh/", "", body, &out); err != nil {
		return domain.TokenPair{}, err
	}
	return out, nil
}

func (a *AuthAPI) Me(ctx context.Context, accessToken string) (domain.User, error) {
	var out domain.User
	if err := a.client.Get(ctx, "/accounts/profile/me/", accessToken, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (a *AuthAPI) UpdateProfile(ctx context.Context, accessToken string, patch domain.ProfilePatch) (domain.User, error) {
	var out domain.User
	if err := a.client.Put(ctx, "/accounts/profile/update_profile/", accessToken, patch, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (a *AuthAPI) ChangePassword(ctx context.Context, accessToken, current, next string) error {
	body := map[string]string{"current_password": current, "new_password": next}
	return a.client.Post(ctx, "/accounts/profile/change_password/", accessToken, body, nil)
}

func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) error {
	return a.client.Post(ctx, "/accounts/forgot-password/", "", map[string]string{"email": email}, nil)
}

func (a *AuthAPI) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return a.client.Post(ctx, "/accounts/reset-password/", "", body, nil)
}

func (a *AuthAPI) CheckAvailability(ctx context.Context, field, value string) (bool, error) {
	q := url.Values{"field": {field}, "value": {value}}
	var out struct {
		Available bool `json:"available"`
	}
	if err := a.client.Get(ctx, "/accounts/check-availability/?"+q.Encode(), "", &out); err != nil {
		return false, err
	}
	return out.Available, nil
}
