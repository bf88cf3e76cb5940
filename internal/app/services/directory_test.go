package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

func TestAlumniDirectoryListing(t *testing.T) {
	e := newTestEnv(t)

	profiles, err := e.svc.Alumni.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	// Newest graduating class first.
	assert.Equal(t, "Jane Doe", profiles[0].FullName)
	assert.Equal(t, 2018, profiles[0].GraduationYear)
	assert.Equal(t, "Software Engineer at Initech", profiles[0].Headline)
	assert.Equal(t, "Marcus Lee", profiles[1].FullName)
	assert.Equal(t, 2015, profiles[1].GraduationYear)
}

func TestAlumniSearchAndFilter(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	profiles, err := e.svc.Alumni.ListAll(ctx)
	require.NoError(t, err)

	found := e.svc.Alumni.Search(profiles, "Initech")
	require.Len(t, found, 1)
	assert.Equal(t, "Jane Doe", found[0].FullName)

	found = e.svc.Alumni.Search(profiles, "austin")
	require.Len(t, found, 1)
	assert.Equal(t, "Marcus Lee", found[0].FullName)

	assert.Len(t, e.svc.Alumni.Search(profiles, ""), 2)
	assert.Empty(t, e.svc.Alumni.Search(profiles, "hogwarts"))

	class2015 := e.svc.Alumni.FilterByYear(profiles, 2015)
	require.Len(t, class2015, 1)
	assert.Equal(t, "Marcus Lee", class2015[0].FullName)

	assert.Len(t, e.svc.Alumni.FilterByYear(profiles, 0), 2)
}

func TestAlumniUpdateMine(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.loginAlumni(t)

	position := "Staff Engineer"
	company := "Hooli"
	view, err := e.svc.Alumni.UpdateMine(ctx, &models.UpdateProfileRequest{
		CurrentPosition: &position,
		Company:         &company,
	})
	require.NoError(t, err)
	assert.True(t, view.IsOwn)
	assert.Equal(t, "Staff Engineer at Hooli", view.Headline)
	assert.Equal(t, 2018, view.GraduationYear) // untouched fields survive

	fetched, err := e.svc.Alumni.Get(ctx, view.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Hooli", fetched.Company)
}

func TestAlumniProfileNotFound(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.svc.Alumni.Get(context.Background(), 999)
	require.Error(t, err)
	assert.EqualError(t, err, "Alumni profile not found")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestUsersGetAndUpdate(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	user, err := e.svc.Users.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Marcus Lee", user.FullName)

	e.loginAlumni(t)
	first := "Janet"
	updated, err := e.svc.Users.UpdateMe(ctx, &models.UpdateUserRequest{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Janet Doe", updated.FullName)

	cached, err := e.store.User()
	require.NoError(t, err)
	assert.Equal(t, "Janet", cached.FirstName)
}

func TestUploadAvatar(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.loginAlumni(t)

	path := writeTempFile(t, "headshot.png", []byte("png bytes"))

	var reports int
	view, err := e.svc.Users.UploadAvatar(ctx, path, func(uploaded, total int64) { reports++ })
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(view.AvatarURL, "/uploads/"))
	assert.Positive(t, reports)

	cached, err := e.store.User()
	require.NoError(t, err)
	assert.Equal(t, view.AvatarURL, cached.AvatarURL)
}

func TestUploadAvatarRejectsNonMediaFile(t *testing.T) {
	e := newTestEnv(t)
	e.loginAlumni(t)

	path := writeTempFile(t, "resume.pdf", []byte("%PDF-1.4"))

	_, err := e.svc.Users.UploadAvatar(context.Background(), path, nil)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestUploadAvatarRejectsVideo(t *testing.T) {
	e := newTestEnv(t)
	e.loginAlumni(t)

	path := writeTempFile(t, "intro.mp4", []byte("mp4 bytes"))

	_, err := e.svc.Users.UploadAvatar(context.Background(), path, nil)
	require.Error(t, err)
	assert.EqualError(t, err, "Avatar must be an image")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUniversityLookup(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	list, err := e.svc.Universities.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "State University", list[0].Name)
	assert.True(t, list[0].HasBranding)

	u, err := e.svc.Universities.GetBySlug(ctx, "state-university")
	require.NoError(t, err)
	assert.Equal(t, list[0].ID, u.ID)
	require.NotNil(t, u.Branding)
	assert.Equal(t, "#1E40AF", u.Branding.Light.Primary)

	same, err := e.svc.Universities.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Slug, same.Slug)

	_, err = e.svc.Universities.GetBySlug(ctx, "nowhere-tech")
	require.Error(t, err)
	assert.EqualError(t, err, "University not found")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
