package mockapi

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// Default seeded credentials, for offline development against cmd/mockapi.
const (
	SeedAdminEmail     = "admin@state.edu"
	SeedAdminPassword  = "admin-password-1"
	SeedAlumniEmail    = "jane@alumni.state.edu"
	SeedAlumniPassword = "alumni-password-1"
)

// Seed loads the default dataset: one branded university, an admin, two
// alumni with directory profiles, a pair of events and a short feed.
func Seed(store *Store, lgr zerolog.Logger) error {
	lgr.Info().Msg("Seeding default mock platform data")

	universityID := store.AddUniversity(&models.University{
		Name:    "State University",
		Slug:    "state-university",
		LogoURL: "/static/logos/state-university.png",
		Branding: &models.BrandingConfig{
			Light: models.BrandingPalette{
				Primary:    "#1E40AF",
				Secondary:  "#9333EA",
				Accent:     "#F59E0B",
				Background: "#FFFFFF",
				Surface:    "#F3F4F6",
				Text:       "#111827",
			},
			Dark: models.BrandingPalette{
				Primary:    "#60A5FA",
				Secondary:  "#C084FC",
				Accent:     "#FBBF24",
				Background: "#111827",
				Surface:    "#1F2937",
				Text:       "#F9FAFB",
			},
		},
	})

	adminHash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	alumniHash, err := bcrypt.GenerateFromPassword([]byte(SeedAlumniPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminID := store.AddUser(&models.User{
		Email:        SeedAdminEmail,
		FirstName:    "Ada",
		LastName:     "Morgan",
		Role:         models.RoleAdmin,
		UniversityID: universityID,
	}, string(adminHash))

	janeID := store.AddUser(&models.User{
		Email:        SeedAlumniEmail,
		FirstName:    "Jane",
		LastName:     "Doe",
		Role:         models.RoleAlumni,
		UniversityID: universityID,
	}, string(alumniHash))

	marcusID := store.AddUser(&models.User{
		Email:        "marcus@alumni.state.edu",
		FirstName:    "Marcus",
		LastName:     "Lee",
		Role:         models.RoleAlumni,
		UniversityID: universityID,
	}, string(alumniHash))

	store.AddProfile(&models.AlumniProfile{
		UserID:          janeID,
		GraduationYear:  2018,
		Degree:          "BSc",
		Major:           "Computer Science",
		CurrentPosition: "Software Engineer",
		Company:         "Initech",
		Location:        "Berlin",
		LinkedinURL:     "https://linkedin.com/in/janedoe",
	})
	store.AddProfile(&models.AlumniProfile{
		UserID:          marcusID,
		GraduationYear:  2015,
		Degree:          "MBA",
		Major:           "Business Administration",
		CurrentPosition: "Product Manager",
		Company:         "Globex",
		Location:        "Austin",
	})

	now := time.Now()
	capacity := 120
	store.AddEvent(&models.Event{
		Title:        "Spring Alumni Reunion",
		Description:  "The annual on-campus reunion with faculty talks and a dinner.",
		StartDate:    now.Add(30 * 24 * time.Hour),
		Location:     "Main Campus, Hall B",
		MaxAttendees: &capacity,
		Status:       models.EventUpcoming,
		CreatorID:    adminID,
		UniversityID: universityID,
	})
	store.AddEvent(&models.Event{
		Title:        "Career Networking Night",
		Description:  "Virtual speed networking across graduating classes.",
		StartDate:    now.Add(14 * 24 * time.Hour),
		MeetingLink:  "https://meet.alumnisphere.app/career-night",
		Status:       models.EventUpcoming,
		CreatorID:    adminID,
		UniversityID: universityID,
	})

	jobTag := models.TagJob
	store.AddPost(&models.Post{
		Content:      "Welcome to the new alumni network! Introduce yourself below.",
		AuthorID:     adminID,
		UniversityID: universityID,
		IsPinned:     true,
	})
	store.AddPost(&models.Post{
		Content:      "We are hiring backend engineers at Initech, happy to refer fellow alumni.",
		AuthorID:     janeID,
		UniversityID: universityID,
		Tag:          &jobTag,
	})

	lgr.Info().Msg("Mock platform data seeded")
	return nil
}
