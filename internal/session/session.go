// Package session tracks who is signed in. The role is derived from a
// configured admin address and only gates the admin screens; nothing here
// verifies credentials.
package session

import (
	"strings"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
)

const DefaultAdminEmail = "admin@arogyasagar.com"

type Session struct {
	adminEmail string
	user       *model.User
}

func New(adminEmail string) *Session {
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	return &Session{adminEmail: adminEmail}
}

// RoleFor returns admin iff email exactly matches the admin address.
func (s *Session) RoleFor(email string) model.Role {
	if email == s.adminEmail {
		return model.RoleAdmin
	}
	return model.RoleUser
}

// Login starts a session. The identity is the trimmed email, but the admin
// role needs the address exactly as configured. An empty name defaults to the
// local part of email.
func (s *Session) Login(email, name string) model.User {
	role := s.RoleFor(email)
	email = strings.TrimSpace(email)
	u := model.User{Email: email, Name: defaultName(email, name), Role: role}
	s.user = &u
	return u
}

// Signup starts a session for a new account, which is never admin.
func (s *Session) Signup(email, name string) model.User {
	email = strings.TrimSpace(email)
	u := model.User{Email: email, Name: defaultName(email, name), Role: model.RoleUser}
	s.user = &u
	return u
}

// Restore reinstates a persisted user.
func (s *Session) Restore(u model.User) {
	s.user = &u
}

func (s *Session) Logout() {
	s.user = nil
}

// Current returns the signed-in user.
func (s *Session) Current() (model.User, bool) {
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Require returns the signed-in user or an Unauthenticated error.
func (s *Session) Require(action string) (model.User, error) {
	u, ok := s.Current()
	if !ok {
		return model.User{}, errx.Unauthenticated("Please login to " + action + ".")
	}
	return u, nil
}

// UpdateProfile merges the update into the current user.
func (s *Session) UpdateProfile(update model.ProfileUpdate) (model.User, error) {
	if s.user == nil {
		return model.User{}, errx.Unauthenticated("Please login to update your profile.")
	}
	update.Apply(s.user)
	return *s.user, nil
}

// Identity is the signed-in email, or empty for a guest.
func (s *Session) Identity() string {
	if s.user == nil {
		return ""
	}
	return s.user.Email
}

func defaultName(email, name string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	local, _, _ := strings.Cut(email, "@")
	return local
}
