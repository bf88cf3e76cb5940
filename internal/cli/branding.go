package cli

import (
	"context"
	"errors"
	"flag"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/branding"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

// runBranding prints the CSS custom-property block the web layer would
// inject: the signed-in user's university palette by default, a named
// university with --slug, or the platform defaults with --public.
func (e *env) runBranding(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("branding", flag.ContinueOnError)
	slug := fs.String("slug", "", "university slug (defaults to your own university)")
	dark := fs.Bool("dark", false, "dark palette instead of light")
	public := fs.Bool("public", false, "platform defaults, as on public routes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode := branding.ModeLight
	if *dark {
		mode = branding.ModeDark
	}

	if *public {
		e.printf("%s", branding.Stylesheet(branding.DefaultVariables(mode)))
		return nil
	}

	university, role, err := e.resolveBrandingSource(ctx, *slug)
	if err != nil {
		return err
	}

	vars := branding.Resolve(university, mode, role, false)
	e.printf("%s", branding.Stylesheet(vars))
	return nil
}

// resolveBrandingSource picks which university's palette applies. With no
// slug it is the cached user's institution; signed out falls back to the
// platform defaults via a nil university.
func (e *env) resolveBrandingSource(ctx context.Context, slug string) (*models.University, models.Role, error) {
	if slug != "" {
		u, err := e.svc.Universities.GetBySlug(ctx, slug)
		if err != nil {
			return nil, "", err
		}
		role := models.RoleAlumni
		if cached, cacheErr := e.store.User(); cacheErr == nil {
			role = cached.Role
		}
		return u, role, nil
	}

	cached, err := e.store.User()
	if errors.Is(err, apperrors.ErrNoStoredUser) {
		return nil, models.RoleAlumni, nil
	}
	if err != nil {
		return nil, "", err
	}

	u, err := e.svc.Universities.Get(ctx, cached.UniversityID)
	if err != nil {
		return nil, "", err
	}
	return u, cached.Role, nil
}
