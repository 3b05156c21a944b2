// Package validate checks user-submitted input before it reaches the stores.
// Failures are returned as errx validation errors and are meant to be shown
// to the user directly.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	"github.com/arogyasagar/storefront/internal/model"
)

const (
	MinPasswordLength = 8
	passwordSpecials  = "@$!%*?&"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
			return isStrongPassword(fl.Field().String())
		})
		instance = v
	})
	return instance
}

// Email checks the address is syntactically plausible. It does not verify ownership.
func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return errx.Validation("email", "Email is required")
	}
	if err := get().Var(email, "email"); err != nil {
		return errx.Validation("email", "Invalid email format (e.g., user@domain.com)")
	}
	return nil
}

// LoginPassword only checks length; no stored credential exists to compare with.
func LoginPassword(password string) error {
	if len(password) < MinPasswordLength {
		return errx.Validation("password", fmt.Sprintf("Please ensure password is at least %d characters.", MinPasswordLength))
	}
	return nil
}

// SignupPassword requires a strong password and a matching confirmation.
func SignupPassword(password, confirm string) error {
	if password == "" {
		return errx.Validation("password", "Password is required")
	}
	if err := get().Var(password, "strongpassword"); err != nil {
		return errx.Validation("password", "Password must be min 8 chars, 1 uppercase, 1 lowercase, 1 number, 1 special char.")
	}
	if password != confirm {
		return errx.Validation("confirmPassword", "Passwords do not match")
	}
	return nil
}

func isStrongPassword(s string) bool {
	if len(s) < MinPasswordLength {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

// Address validates a shipping address.
func Address(a model.Address) error {
	if err := get().Struct(a); err != nil {
		return translate(err)
	}
	return nil
}

// Payment validates the payment method and, for UPI, the UPI id.
func Payment(p model.Payment) error {
	if !p.Method.Valid() {
		return errx.Validation("method", fmt.Sprintf("Unsupported payment method %q", p.Method))
	}
	if p.Method == model.PaymentUPI && !strings.Contains(p.UPIID, "@") {
		return errx.Validation("upiId", "Please enter a valid UPI ID")
	}
	return nil
}

// Booking validates a consultation request.
func Booking(b model.Booking) error {
	if err := get().Struct(b); err != nil {
		return translate(err)
	}
	if !slices.Contains(model.ClinicTimeSlots, b.Time) {
		return errx.Validation("time", fmt.Sprintf("Time slot %q is not available", b.Time))
	}
	return Payment(b.Payment)
}

// Profile validates editable profile fields. The address is optional here
// and is not held to checkout rules.
func Profile(pu model.ProfileUpdate) error {
	if err := get().StructExcept(pu, "Address"); err != nil {
		return translate(err)
	}
	return nil
}

// Review validates a user review before it is stored.
func Review(r model.Review) error {
	if strings.TrimSpace(r.UserName) == "" {
		return errx.Validation("userName", "Please enter your name.")
	}
	if err := get().Var(r.Rating, "min=1,max=5"); err != nil {
		return errx.Validation("rating", "Rating must be between 1 and 5")
	}
	if strings.TrimSpace(r.ProductID) == "" {
		return errx.Validation("productId", "Product is required")
	}
	return nil
}

// Product checks the fields an admin submits for a product.
func Product(p model.Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return errx.Validation("id", "Product id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errx.Validation("name", "Product name is required")
	}
	if p.Price < 0 {
		return errx.Validation("price", "Price cannot be negative")
	}
	if !model.IsKnownCategory(p.Category) {
		return errx.Validation("category", fmt.Sprintf("Unknown category %q", p.Category))
	}
	return nil
}

// Doctor checks the fields an admin submits for a doctor.
func Doctor(d model.Doctor) error {
	if strings.TrimSpace(d.ID) == "" {
		return errx.Validation("id", "Doctor id is required")
	}
	if strings.TrimSpace(d.Name) == "" {
		return errx.Validation("name", "Doctor name is required")
	}
	if d.Price < 0 {
		return errx.Validation("price", "Price cannot be negative")
	}
	return nil
}

func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errx.Validation("", err.Error())
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return errx.Validation(field, fmt.Sprintf("%s is required", field))
	case "oneof":
		return errx.Validation(field, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
	case "datetime":
		return errx.Validation(field, fmt.Sprintf("%s must use the format %s", field, fe.Param()))
	default:
		return errx.Validation(field, fmt.Sprintf("%s is invalid", field))
	}
}
