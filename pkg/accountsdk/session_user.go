package accountsdk

import (
	"context"
	"net/http"
)

// Profile fetches the authenticated user's full profile.
func (s *Session) Profile(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/profile/", nil)
	if err != nil {
		return nil, err
	}

	var out User
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial profile update and returns the refreshed
// profile. Fields left nil are unchanged.
func (s *Session) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/profile/", req)
	if err != nil {
		return nil, err
	}

	var out User
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserInfo fetches the same profile shape via the read-only info endpoint.
func (s *Session) UserInfo(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/user-info/", nil)
	if err != nil {
		return nil, err
	}

	var out User
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
