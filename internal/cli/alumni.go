package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
)

func (e *env) runAlumni(ctx context.Context, args []string) error {
	sub, err := requireArg(args, "alumni list|search")
	if err != nil {
		return err
	}

	switch sub {
	case "list":
		return e.runAlumniList(ctx, args[1:], "")
	case "search":
		query, err := requireArg(args[1:], "a search query")
		if err != nil {
			return err
		}
		return e.runAlumniList(ctx, args[2:], query)
	default:
		return fmt.Errorf("unknown alumni subcommand %q", sub)
	}
}

// runAlumniList fetches the directory and applies the pure search/filter
// helpers locally, the same way the directory page does.
func (e *env) runAlumniList(ctx context.Context, args []string, query string) error {
	fs := flag.NewFlagSet("alumni", flag.ContinueOnError)
	all := fs.Bool("all", query != "", "fetch every page (default for search)")
	skip := fs.Int("skip", 0, "items to skip")
	limit := fs.Int("limit", helpers.DefaultLimit, "page size")
	year := fs.Int("year", 0, "only this graduating class")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var profiles []dto.AlumniProfileView
	var err error
	if *all {
		profiles, err = e.svc.Alumni.ListAll(ctx)
	} else {
		profiles, err = e.svc.Alumni.List(ctx, *skip, *limit)
	}
	if err != nil {
		return err
	}

	profiles = e.svc.Alumni.FilterByYear(profiles, *year)
	profiles = e.svc.Alumni.Search(profiles, query)

	if len(profiles) == 0 {
		e.printf("No matching alumni\n")
		return nil
	}

	for _, p := range profiles {
		line := []string{fmt.Sprintf("class of %d", p.GraduationYear)}
		if p.Headline != "" {
			line = append(line, p.Headline)
		}
		if p.Location != "" {
			line = append(line, p.Location)
		}
		e.printf("%-24s %s\n", p.FullName, strings.Join(line, ", "))
	}
	return nil
}
