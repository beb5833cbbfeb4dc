package service

import (
	"context"

	"github.com/campuskit/accounts/internal/accounts/domain"
	"github.com/campuskit/accounts/internal/accounts/store"
)

// UserService covers profile reads and updates. Identity fields (email,
// username) are not reachable through it.
type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// ProfilePatch is the raw PATCH payload; nil fields are untouched.
type ProfilePatch struct {
	FirstName   *string
	LastName    *string
	University  *string
	BloodGroup  *string
	MobileNo    *string
	Gender      *string
	DateOfBirth *string // YYYY-MM-DD
	Address     *string
}

// UpdateProfile validates and applies a partial profile mutation, returning
// the refreshed user.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (domain.User, error) {
	e := newValidationError()

	if patch.FirstName != nil && *patch.FirstName == "" {
		e.add("first_name", "This field may not be blank.")
	}
	if patch.LastName != nil && *patch.LastName == "" {
		e.add("last_name", "This field may not be blank.")
	}

	var (
		bloodGroup, gender, mobileNo, dob string
	)
	if patch.BloodGroup != nil {
		bloodGroup = *patch.BloodGroup
	}
	if patch.Gender != nil {
		gender = *patch.Gender
	}
	if patch.MobileNo != nil {
		mobileNo = *patch.MobileNo
	}
	if patch.DateOfBirth != nil {
		dob = *patch.DateOfBirth
	}
	parsedDOB := validateOptionalProfileFields(e, bloodGroup, gender, mobileNo, dob)

	if err := e.orNil(); err != nil {
		return domain.User{}, err
	}

	update := domain.ProfileUpdate{
		FirstName:  patch.FirstName,
		LastName:   patch.LastName,
		University: patch.University,
		BloodGroup: patch.BloodGroup,
		MobileNo:   patch.MobileNo,
		Gender:     patch.Gender,
		Address:    patch.Address,
	}
	if patch.DateOfBirth != nil {
		update.DateOfBirth = parsedDOB
	}

	if err := s.Store.Users().UpdateProfile(ctx, userID, update); err != nil {
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}

// Deactivate flips the account inactive. Token authentication fails from the
// next request on; no rows are deleted.
func (s *UserService) Deactivate(ctx context.Context, userID string) error {
	return s.Store.Users().SetActive(ctx, userID, false)
}
