// Package app owns the authentication lifecycle: login, registration,
// durable rehydration, profile maintenance and the background token refresh.
// All other stores read session state through Snapshot and react to
// transitions through Subscribe; nothing else touches the token pair.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/internal/session/domain"
	"github.com/YougleTech/Arun-Cloth-Shop-Website-sub000/pkg/rest"
)

// Fixed storage keys. The web client used the same two local-storage keys;
// their presence is the sole trigger for rehydration.
const (
	userKey   = "auth_user"
	tokensKey = "auth_tokens"
)

var ErrUnauthenticated = errors.New("not authenticated")

type Store struct {
	api          AuthAPI
	storage      Storage
	log          *slog.Logger
	refreshEvery time.Duration

	mu      sync.Mutex
	user    *domain.User
	tokens  *domain.TokenPair
	epoch   uint64
	pending int
	lastErr error
	subs    []func(domain.Snapshot)
}

func NewStore(api AuthAPI, storage Storage, log *slog.Logger, refreshEvery time.Duration) *Store {
	if refreshEvery <= 0 {
		refreshEvery = 30 * time.Minute
	}
	return &Store{
		api:          api,
		storage:      storage,
		log:          log,
		refreshEvery: refreshEvery,
	}
}

// Rehydrate adopts a previously persisted session without touching the
// network. Missing or unparsable state means starting logged out; it never
// fails. Safe to call more than once.
func (s *Store) Rehydrate() {
	rawUser, okUser, errUser := s.storage.Get(userKey)
	rawTokens, okTokens, errTokens := s.storage.Get(tokensKey)
	if errUser != nil || errTokens != nil {
		s.log.Warn("session storage unreadable, starting logged out",
			slog.Any("user_err", errUser), slog.Any("tokens_err", errTokens))
		return
	}
	if !okUser || !okTokens {
		return
	}

	var user domain.User
	var tokens domain.TokenPair
	if json.Unmarshal(rawUser, &user) != nil || json.Unmarshal(rawTokens, &tokens) != nil {
		s.log.Warn("persisted session corrupt, starting logged out")
		return
	}
	if tokens.Access == "" || tokens.Refresh == "" {
		return
	}

	s.mu.Lock()
	wasAuth := s.authenticatedLocked()
	s.user = &user
	s.tokens = &tokens
	if !wasAuth {
		s.epoch++
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if !wasAuth {
		s.notify(snap)
	}
}

func (s *Store) Login(ctx context.Context, email, password string) error {
	s.begin()
	user, tokens, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.finish(err)
		return err
	}
	s.adopt(user, tokens)
	s.finish(nil)
	return nil
}

func (s *Store) Register(ctx context.Context, reg domain.Registration) error {
	s.begin()
	user, tokens, err := s.api.Register(ctx, reg)
	if err != nil {
		s.finish(err)
		return err
	}
	s.adopt(user, tokens)
	s.finish(nil)
	return nil
}

// Logout always succeeds locally. The backend call invalidating the refresh
// token is best effort: an unreachable server must not trap the user in a
// session.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	tokens := s.tokens
	s.mu.Unlock()

	if tokens != nil {
		if err := s.api.Logout(ctx, tokens.Access, tokens.Refresh); err != nil {
			s.log.Warn("backend logout failed, clearing locally anyway", slog.Any("err", err))
		}
	}
	s.clear()
}

func (s *Store) UpdateUser(ctx context.Context, patch domain.ProfilePatch) error {
	snap := s.Snapshot()
	if !snap.Authenticated() {
		return ErrUnauthenticated
	}

	s.begin()
	user, err := s.api.UpdateProfile(ctx, snap.AccessToken, patch)
	if err != nil {
		s.finish(err)
		return err
	}

	s.mu.Lock()
	// A logout while the update was in flight wins; the response is dropped.
	if s.epoch == snap.Epoch && s.authenticatedLocked() {
		s.user = &user
		s.persistLocked()
	}
	s.mu.Unlock()
	s.finish(nil)
	return nil
}

func (s *Store) ChangePassword(ctx context.Context, current, next string) error {
	snap := s.Snapshot()
	if !snap.Authenticated() {
		return ErrUnauthenticated
	}
	s.begin()
	err := s.api.ChangePassword(ctx, snap.AccessToken, current, next)
	s.finish(err)
	return err
}

func (s *Store) ForgotPassword(ctx context.Context, email string) error {
	s.begin()
	err := s.api.ForgotPassword(ctx, email)
	s.finish(err)
	return err
}

func (s *Store) ResetPassword(ctx context.Context, token, password string) error {
	s.begin()
	err := s.api.ResetPassword(ctx, token, password)
	s.finish(err)
	return err
}

// CheckAvailability probes field uniqueness (email, username, phone) for live
// form validation. Read-only; does not touch loading or error state.
func (s *Store) CheckAvailability(ctx context.Context, field, value string) (bool, error) {
	return s.api.CheckAvailability(ctx, field, value)
}

// StartRefresh runs the silent token renewal loop until ctx is cancelled. A
// failed renewal is treated as session expiry: the session is cleared exactly
// as Logout clears it, surfaced to the user only as the implicit logout.
func (s *Store) StartRefresh(ctx context.Context) {
	go s.refreshLoop(ctx)
}

func (s *Store) refreshLoop(ctx context.Context) {
	s.mu.Lock()
	expired := s.tokens != nil && accessExpired(s.tokens.Access)
	s.mu.Unlock()
	if expired {
		s.refreshOnce(ctx)
	}

	t := time.NewTicker(s.refreshEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.refreshOnce(ctx)
		}
	}
}

func (s *Store) refreshOnce(ctx context.Context) {
	s.mu.Lock()
	tokens := s.tokens
	epoch := s.epoch
	s.mu.Unlock()
	if tokens == nil {
		return
	}

	pair, err := s.api.Refresh(ctx, tokens.Refresh)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		// The failure only ends the session it was issued for. A logout or a
		// fresh login while the call was in flight moved the epoch; that new
		// session keeps its tokens.
		if s.clearIfEpoch(epoch) {
			s.log.Warn("token refresh failed, ending session", slog.Any("err", err))
		}
		return
	}
	if pair.Refresh == "" {
		// Backend without rotation returns only a new access token.
		pair.Refresh = tokens.Refresh
	}

	s.mu.Lock()
	if s.epoch != epoch || s.tokens == nil {
		s.mu.Unlock()
		return
	}
	s.tokens = &pair
	s.persistLocked()
	s.mu.Unlock()
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticatedLocked()
}

// CurrentUser returns a copy of the cached profile, or nil when logged out.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}

func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// LastBanner maps the last error to its user-facing banner.
func (s *Store) LastBanner() (rest.Banner, bool) {
	return rest.BannerFor(s.LastError())
}

// Subscribe registers fn to run on every authenticated/unauthenticated
// transition, with the post-transition snapshot. Callbacks run synchronously
// on the goroutine that caused the transition.
func (s *Store) Subscribe(fn func(domain.Snapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) adopt(user domain.User, tokens domain.TokenPair) {
	s.mu.Lock()
	s.user = &user
	s.tokens = &tokens
	s.lastErr = nil
	// Any successful login or registration starts a fresh session, even when
	// one was already active.
	s.epoch++
	s.persistLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

func (s *Store) clear() {
	s.mu.Lock()
	wasAuth, snap := s.clearLocked()
	s.mu.Unlock()

	if wasAuth {
		s.notify(snap)
	}
}

// clearIfEpoch clears the session only if the epoch still matches the one
// captured when the triggering call was issued. Reports whether it cleared.
func (s *Store) clearIfEpoch(epoch uint64) bool {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return false
	}
	wasAuth, snap := s.clearLocked()
	s.mu.Unlock()

	if wasAuth {
		s.notify(snap)
	}
	return true
}

func (s *Store) clearLocked() (wasAuth bool, snap domain.Snapshot) {
	wasAuth = s.authenticatedLocked()
	s.user = nil
	s.tokens = nil
	if wasAuth {
		s.epoch++
	}
	if err := s.storage.Delete(userKey); err != nil {
		s.log.Warn("clear persisted user failed", slog.Any("err", err))
	}
	if err := s.storage.Delete(tokensKey); err != nil {
		s.log.Warn("clear persisted tokens failed", slog.Any("err", err))
	}
	return wasAuth, s.snapshotLocked()
}

// persistLocked mirrors the in-memory session to storage. Called with s.mu
// held so memory and storage change together.
func (s *Store) persistLocked() {
	if s.user == nil || s.tokens == nil {
		return
	}
	rawUser, err := json.Marshal(s.user)
	if err == nil {
		err = s.storage.Set(userKey, rawUser)
	}
	if err != nil {
		s.log.Warn("persist user failed", slog.Any("err", err))
	}
	rawTokens, err := json.Marshal(s.tokens)
	if err == nil {
		err = s.storage.Set(tokensKey, rawTokens)
	}
	if err != nil {
		s.log.Warn("persist tokens failed", slog.Any("err", err))
	}
}

func (s *Store) authenticatedLocked() bool {
	return s.user != nil && s.tokens != nil && s.tokens.Access != ""
}

func (s *Store) snapshotLocked() domain.Snapshot {
	snap := domain.Snapshot{Epoch: s.epoch}
	if s.authenticatedLocked() {
		u := *s.user
		snap.User = &u
		snap.AccessToken = s.tokens.Access
	}
	return snap
}

func (s *Store) notify(snap domain.Snapshot) {
	s.mu.Lock()
	subs := slices.Clone(s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

func (s *Store) begin() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *Store) finish(err error) {
	s.mu.Lock()
	s.pending--
	s.lastErr = err
	s.mu.Unlock()
}

// accessExpired inspects the token's exp claim without verifying the
// signature; only the backend holds the signing key. Tokens that are not JWTs
// or carry no exp are assumed live.
func accessExpired(token string) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}
