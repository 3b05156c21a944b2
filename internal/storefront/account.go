package storefront

import (
	"context"
	"strings"

	"github.com/arogyasagar/storefront/internal/model"
	"github.com/arogyasagar/storefront/internal/storage"
	"github.com/arogyasagar/storefront/internal/validate"
	logx "github.com/arogyasagar/storefront/pkg/logger"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type Registration struct {
	Credentials
	ConfirmPassword string `json:"confirmPassword"`
}

// Login starts a session. The password is only checked for shape; no
// credential store exists.
func (s *Storefront) Login(ctx context.Context, c Credentials) (model.User, error) {
	if err := validate.Email(strings.TrimSpace(c.Email)); err != nil {
		return model.User{}, err
	}
	if err := validate.LoginPassword(c.Password); err != nil {
		return model.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.session.Identity()
	return s.startSessionLocked(ctx, prev, s.session.Login(c.Email, c.Name))
}

// Signup starts a session for a new user account.
func (s *Storefront) Signup(ctx context.Context, r Registration) (model.User, error) {
	email := strings.TrimSpace(r.Email)
	if err := validate.Email(email); err != nil {
		return model.User{}, err
	}
	if err := validate.SignupPassword(r.Password, r.ConfirmPassword); err != nil {
		return model.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.session.Identity()
	return s.startSessionLocked(ctx, prev, s.session.Signup(email, r.Name))
}

// startSessionLocked switches to u, emptying the cart when a different user
// takes over.
func (s *Storefront) startSessionLocked(ctx context.Context, prev string, u model.User) (model.User, error) {
	if prev != "" && prev != u.Email {
		s.cart.Clear()
	}
	logx.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("signed in")
	if err := s.chat.SwitchIdentity(ctx, u.Email, u.Name); err != nil {
		logx.Warn().Err(err).Str("email", u.Email).Msg("could not load chat transcript")
	}
	return u, s.save(ctx, storage.KeyUser, u)
}

// Logout ends the session, empties the cart and switches the assistant
// back to the guest transcript.
func (s *Storefront) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Logout()
	s.cart.Clear()
	if err := s.chat.SwitchIdentity(ctx, "", ""); err != nil {
		logx.Warn().Err(err).Msg("could not load guest chat transcript")
	}
	if err := s.store.Delete(ctx, storage.KeyUser); err != nil {
		logx.Error().Err(err).Msg("failed to clear persisted user")
		return err
	}
	return nil
}

func (s *Storefront) CurrentUser() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Current()
}

// UpdateProfile merges the update into the signed-in user.
func (s *Storefront) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.session.Require("update your profile"); err != nil {
		return model.User{}, err
	}
	if err := validate.Profile(update); err != nil {
		return model.User{}, err
	}
	u, err := s.session.UpdateProfile(update)
	if err != nil {
		return model.User{}, err
	}
	return u, s.save(ctx, storage.KeyUser, u)
}
