package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

func TestMediaKindByExtension(t *testing.T) {
	kind, err := MediaKind("reunion.JPG")
	require.NoError(t, err)
	assert.Equal(t, models.MediaImage, kind)

	kind, err = MediaKind("talk.mp4")
	require.NoError(t, err)
	assert.Equal(t, models.MediaVideo, kind)

	_, err = MediaKind("notes.pdf")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)

	_, err = MediaKind("noextension")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestCheckMediaFileSizeCaps(t *testing.T) {
	// Images get the 10 MB cap.
	_, err := CheckMediaFile("big.png", MaxImageSize+1)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)

	kind, err := CheckMediaFile("ok.png", MaxImageSize)
	require.NoError(t, err)
	assert.Equal(t, models.MediaImage, kind)

	// Videos get the 100 MB cap, so an image-sized overrun is fine.
	kind, err = CheckMediaFile("clip.mov", MaxImageSize+1)
	require.NoError(t, err)
	assert.Equal(t, models.MediaVideo, kind)

	_, err = CheckMediaFile("long.webm", MaxVideoSize+1)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestCheckMediaFileRejectsBeforeSizeCheck(t *testing.T) {
	// Extension check comes first: a tiny but unsupported file still fails.
	_, err := CheckMediaFile("malware.exe", 10)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("jane@alumni.edu").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("not-an-email").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.False(t, NewStringValidation("short").WithMinLength(PasswordMinLength).Validate())
}

func TestNumericValidation(t *testing.T) {
	assert.True(t, NewNumericValidation(2015).WithMin(1900).WithMax(2100).Validate())
	assert.False(t, NewNumericValidation(1850).WithMin(1900).WithMax(2100).Validate())
	assert.False(t, NewNumericValidation(2200).WithMin(1900).WithMax(2100).Validate())
}
