package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yigit/alumnisphere/internal/app/models"
)

func (e *env) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return errors.New("login requires --email")
	}
	if *password == "" {
		p, err := promptPassword()
		if err != nil {
			return err
		}
		*password = p
	}

	user, err := e.svc.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	e.printf("Signed in as %s (%s)\n", user.FullName, user.Email)
	return nil
}

func (e *env) runLogout(ctx context.Context) error {
	if err := e.svc.Auth.Logout(ctx); err != nil {
		return err
	}
	e.printf("Signed out\n")
	return nil
}

func (e *env) runWhoami(ctx context.Context) error {
	user, err := e.svc.Auth.Me(ctx)
	if err != nil {
		// Fall back to the cached record when offline; stale beats nothing
		// for an identity check.
		if cached, cacheErr := e.store.User(); cacheErr == nil {
			view := toCachedLine(cached)
			e.printf("%s (cached; server unreachable)\n", view)
			return nil
		}
		return err
	}

	e.printf("%s (%s)\n", user.FullName, user.Email)
	e.printf("  role: %s  university: %d\n", user.Role, user.UniversityID)
	return nil
}

func toCachedLine(user *models.User) string {
	return fmt.Sprintf("%s (%s)", user.FullName(), user.Email)
}

// promptPassword reads the password from stdin without echoing being a
// concern for this shell; piped input works the same way.
func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
