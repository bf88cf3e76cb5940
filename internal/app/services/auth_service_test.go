package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/mockapi"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

func TestLoginPersistsSession(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	view, err := e.svc.Auth.Login(ctx, mockapi.SeedAlumniEmail, mockapi.SeedAlumniPassword)
	require.NoError(t, err)
	assert.Equal(t, mockapi.SeedAlumniEmail, view.Email)
	assert.Equal(t, "Jane Doe", view.FullName)
	assert.False(t, view.IsAdmin)

	token, err := e.store.Token()
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	cached, err := e.store.User()
	require.NoError(t, err)
	assert.Equal(t, view.ID, cached.ID)

	me, err := e.svc.Auth.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, view.ID, me.ID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.svc.Auth.Login(context.Background(), mockapi.SeedAlumniEmail, "definitely-wrong")
	require.Error(t, err)
	assert.EqualError(t, err, "Incorrect email or password")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = e.store.Token()
	assert.ErrorIs(t, err, apperrors.ErrNoStoredToken)
}

func TestMeRequiresSession(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.svc.Auth.Me(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "You must be logged in")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogoutClearsSession(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.loginAlumni(t)

	require.NoError(t, e.svc.Auth.Logout(ctx))

	_, err := e.store.Token()
	assert.ErrorIs(t, err, apperrors.ErrNoStoredToken)
	_, err = e.store.User()
	assert.ErrorIs(t, err, apperrors.ErrNoStoredUser)

	_, err = e.svc.Auth.Me(ctx)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestRegisterCreatesAccountAndSignsIn(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	view, err := e.svc.Auth.Register(ctx, &models.RegisterRequest{
		Email:          "nora@alumni.state.edu",
		Password:       "a-long-password",
		FirstName:      "Nora",
		LastName:       "Quinn",
		UniversityID:   1,
		GraduationYear: 2021,
	})
	require.NoError(t, err)
	assert.NotZero(t, view.ID)
	assert.Equal(t, "Nora Quinn", view.FullName)

	token, err := e.store.Token()
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	me, err := e.svc.Auth.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "nora@alumni.state.edu", me.Email)
}

func TestRegisterValidatesBeforeNetwork(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"bad email", models.RegisterRequest{
			Email: "not-an-email", Password: "a-long-password",
			FirstName: "Nora", LastName: "Quinn", UniversityID: 1,
		}},
		{"short password", models.RegisterRequest{
			Email: "nora@alumni.state.edu", Password: "short",
			FirstName: "Nora", LastName: "Quinn", UniversityID: 1,
		}},
		{"missing name", models.RegisterRequest{
			Email: "nora@alumni.state.edu", Password: "a-long-password",
			UniversityID: 1,
		}},
		{"absurd graduation year", models.RegisterRequest{
			Email: "nora@alumni.state.edu", Password: "a-long-password",
			FirstName: "Nora", LastName: "Quinn", UniversityID: 1,
			GraduationYear: 1642,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			_, err := e.svc.Auth.Register(ctx, &req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.svc.Auth.Register(context.Background(), &models.RegisterRequest{
		Email:        mockapi.SeedAlumniEmail,
		Password:     "a-long-password",
		FirstName:    "Jane",
		LastName:     "Again",
		UniversityID: 1,
	})
	require.Error(t, err)
	assert.EqualError(t, err, "An account with this email already exists")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestChangePassword(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.loginAlumni(t)

	err := e.svc.Auth.ChangePassword(ctx, mockapi.SeedAlumniPassword, "brand-new-password")
	require.NoError(t, err)

	require.NoError(t, e.svc.Auth.Logout(ctx))

	_, err = e.svc.Auth.Login(ctx, mockapi.SeedAlumniEmail, mockapi.SeedAlumniPassword)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = e.svc.Auth.Login(ctx, mockapi.SeedAlumniEmail, "brand-new-password")
	assert.NoError(t, err)
}

func TestChangePasswordRejectsWrongCurrent(t *testing.T) {
	e := newTestEnv(t)
	e.loginAlumni(t)

	err := e.svc.Auth.ChangePassword(context.Background(), "not-my-password", "brand-new-password")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestChangePasswordEnforcesMinimumLength(t *testing.T) {
	e := newTestEnv(t)
	e.loginAlumni(t)

	err := e.svc.Auth.ChangePassword(context.Background(), mockapi.SeedAlumniPassword, "tiny")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
