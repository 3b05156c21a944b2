package model

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Role    Role     `json:"role"`
	Phone   string   `json:"phone,omitempty"`
	Gender  string   `json:"gender,omitempty"`
	Age     int      `json:"age,omitempty"`
	Address *Address `json:"address,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileUpdate is a partial profile edit. Email and role are not editable.
type ProfileUpdate struct {
	Name    *string  `json:"name,omitempty"`
	Phone   *string  `json:"phone,omitempty"`
	Gender  *string  `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	Age     *int     `json:"age,omitempty" validate:"omitempty,min=0,max=130"`
	Address *Address `json:"address,omitempty"`
}

func (pu ProfileUpdate) Apply(u *User) {
	if pu.Name != nil {
		u.Name = *pu.Name
	}
	if pu.Phone != nil {
		u.Phone = *pu.Phone
	}
	if pu.Gender != nil {
		u.Gender = *pu.Gender
	}
	if pu.Age != nil {
		u.Age = *pu.Age
	}
	if pu.Address != nil {
		addr := *pu.Address
		u.Address = &addr
	}
}

// WishlistItem is a saved product snapshot.
type WishlistItem struct {
	Product
	DateAdded time.Time `json:"dateAdded"`
}
