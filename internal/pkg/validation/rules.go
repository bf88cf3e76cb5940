package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// Upload size caps, per media kind.
const (
	MaxImageSize = 10 << 20  // 10 MB
	MaxVideoSize = 100 << 20 // 100 MB
)

// Allowed upload extensions, lowercase without the dot.
var (
	ImageExtensions = map[string]bool{
		"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true,
	}
	VideoExtensions = map[string]bool{
		"mp4": true, "webm": true, "mov": true,
	}
)

// MediaKind classifies a filename by extension.
func MediaKind(filename string) (models.MediaType, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch {
	case ImageExtensions[ext]:
		return models.MediaImage, nil
	case VideoExtensions[ext]:
		return models.MediaVideo, nil
	default:
		return "", apperrors.NewCustomError(
			apperrors.ErrUnsupportedFileType,
			fmt.Sprintf("unsupported file type %q: allowed extensions are %s", filepath.Ext(filename), allowedExtensionList()),
		)
	}
}

// CheckMediaFile validates a file for upload: extension allowlist first, then
// the per-kind size cap. It never touches the file contents.
func CheckMediaFile(filename string, size int64) (models.MediaType, error) {
	kind, err := MediaKind(filename)
	if err != nil {
		return "", err
	}

	limit := int64(MaxImageSize)
	label := "10 MB image"
	if kind == models.MediaVideo {
		limit = MaxVideoSize
		label = "100 MB video"
	}

	if size > limit {
		return "", apperrors.NewCustomError(
			apperrors.ErrFileTooLarge,
			fmt.Sprintf("%s exceeds the %s limit", filepath.Base(filename), label),
		)
	}

	return kind, nil
}

func allowedExtensionList() string {
	exts := make([]string, 0, len(ImageExtensions)+len(VideoExtensions))
	for ext := range ImageExtensions {
		exts = append(exts, ext)
	}
	for ext := range VideoExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	// Check if required
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	// Check min length
	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	// Check max length
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	// Check pattern
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// Numeric validation
type NumericValidation struct {
	Value    int
	Min      int
	Max      int
	Required bool
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{
		Value:    value,
		Required: true,
	}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	// Check min value
	if v.Min != 0 && v.Value < v.Min {
		return false
	}

	// Check max value
	if v.Max != 0 && v.Value > v.Max {
		return false
	}

	return true
}
