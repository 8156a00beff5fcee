package models

import (
	"time"
)

// Account is an identity as known to the backend auth service
type Account struct {
	UID         string    `json:"uid" db:"uid"`
	DisplayName string    `json:"display_name" db:"display_name"`
	Email       string    `json:"email" db:"email"`
	PhotoURL    string    `json:"photo_url" db:"photo_url"`
	Provider    string    `json:"provider" db:"provider"`
	SignedInAt  time.Time `json:"signed_in_at" db:"signed_in_at"`
}

// Validate checks the account fields the backend relies on
func (a *Account) Validate() ValidationErrors {
	var errs ValidationErrors

	if a.UID == "" {
		errs = append(errs, ValidationError{Field: "uid", Message: "UID is required"})
	}

	if len(a.UID) > 255 {
		errs = append(errs, ValidationError{Field: "uid", Message: "UID must be less than 255 characters"})
	}

	if a.Email != "" && !isValidEmail(a.Email) {
		errs = append(errs, ValidationError{Field: "email", Message: "Email format is invalid"})
	}

	return errs
}

// ToUserData maps the account to the presentation-facing identity.
// Empty display name or photo URL become nil.
func (a *Account) ToUserData() *UserData {
	if a == nil {
		return nil
	}
	return &UserData{
		ID:          a.UID,
		DisplayName: optionalString(a.DisplayName),
		AvatarURL:   optionalString(a.PhotoURL),
	}
}
