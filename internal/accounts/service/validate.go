package service

import (
	"net/mail"
	"strings"
	"time"

	"github.com/campuskit/accounts/internal/accounts/domain"
)

const (
	minPasswordLength = 8
	maxUsernameLength = 150
	maxNameLength     = 50
	maxMobileLength   = 15
	dateOfBirthLayout = "2006-01-02"
)

// RegistrationInput is the raw registration payload before validation.
type RegistrationInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string

	FirstName   string
	LastName    string
	University  string
	BloodGroup  string
	MobileNo    string
	Gender      string
	DateOfBirth string // YYYY-MM-DD, optional
	Address     string
}

// validateRegistration checks every field and collects all problems into one
// ValidationError so the client sees the full picture in a single response.
// On success it returns the parsed date of birth (nil when absent).
func validateRegistration(in RegistrationInput) (*time.Time, error) {
	e := newValidationError()

	username := strings.TrimSpace(in.Username)
	switch {
	case username == "":
		e.add("username", "This field is required.")
	case len(username) > maxUsernameLength:
		e.add("username", "Ensure this field has no more than 150 characters.")
	case strings.ContainsAny(username, " \t"):
		e.add("username", "Username may not contain whitespace.")
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		e.add("email", "This field is required.")
	} else if _, err := mail.ParseAddress(email); err != nil {
		e.add("email", "Enter a valid email address.")
	}

	validatePasswordPair(e, "password", in.Password, "password_confirm", in.PasswordConfirm)

	if strings.TrimSpace(in.FirstName) == "" {
		e.add("first_name", "This field is required.")
	} else if len(in.FirstName) > maxNameLength {
		e.add("first_name", "Ensure this field has no more than 50 characters.")
	}
	if strings.TrimSpace(in.LastName) == "" {
		e.add("last_name", "This field is required.")
	} else if len(in.LastName) > maxNameLength {
		e.add("last_name", "Ensure this field has no more than 50 characters.")
	}

	dob := validateOptionalProfileFields(e, in.BloodGroup, in.Gender, in.MobileNo, in.DateOfBirth)

	if err := e.orNil(); err != nil {
		return nil, err
	}
	return dob, nil
}

func validatePasswordPair(e *ValidationError, field, password, confirmField, confirm string) {
	switch {
	case password == "":
		e.add(field, "This field is required.")
	case len(password) < minPasswordLength:
		e.add(field, "This password is too short. It must contain at least 8 characters.")
	}
	if password != confirm {
		e.add(confirmField, "Passwords do not match.")
	}
}

func validateOptionalProfileFields(e *ValidationError, bloodGroup, gender, mobileNo, dateOfBirth string) *time.Time {
	if bloodGroup != "" && !domain.ValidBloodGroup(bloodGroup) {
		e.add("blood_group", `"`+bloodGroup+`" is not a valid choice.`)
	}
	if gender != "" && !domain.ValidGender(gender) {
		e.add("gender", `"`+gender+`" is not a valid choice.`)
	}
	if len(mobileNo) > maxMobileLength {
		e.add("mobile_no", "Ensure this field has no more than 15 characters.")
	}

	if dateOfBirth == "" {
		return nil
	}
	t, err := time.Parse(dateOfBirthLayout, dateOfBirth)
	if err != nil {
		e.add("date_of_birth", "Date has wrong format. Use YYYY-MM-DD.")
		return nil
	}
	return &t
}
