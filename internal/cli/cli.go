// Package cli is the terminal shell over the resource services: each command
// parses its flags, drives one service and prints the resulting view shapes.
// It holds no state of its own; everything durable lives in the credential
// store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yigit/alumnisphere/internal/app/services"
	"github.com/yigit/alumnisphere/internal/client"
	"github.com/yigit/alumnisphere/internal/config"
	"github.com/yigit/alumnisphere/internal/credstore"
	"github.com/yigit/alumnisphere/internal/pkg/logger"
)

const usage = `alumnisphere <command> [flags]

Session:
  login          Sign in and store the session
  logout         Sign out and clear the stored session
  whoami         Show the signed-in account

Resources:
  events         List, inspect and register for events
  feed           Read the university feed
  post           Publish a post, optionally with media
  alumni         Browse and search the alumni directory
  docs           Request official documents and track their status
  notifications  List notifications and mark them read
  branding       Print the active university theme as CSS variables
`

// env bundles what every command needs: resolved config, the session store
// and the wired services.
type env struct {
	cfg   *config.Config
	store *credstore.Store
	svc   *services.Services
	out   io.Writer
}

// Run dispatches one CLI invocation. args excludes the program name.
func Run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("expected a command")
	}

	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprint(out, usage)
		return nil
	}

	e, err := newEnv(out)
	if err != nil {
		return err
	}

	switch args[0] {
	case "login":
		return e.runLogin(ctx, args[1:])
	case "logout":
		return e.runLogout(ctx)
	case "whoami":
		return e.runWhoami(ctx)
	case "events":
		return e.runEvents(ctx, args[1:])
	case "feed":
		return e.runFeed(ctx, args[1:])
	case "post":
		return e.runPost(ctx, args[1:])
	case "alumni":
		return e.runAlumni(ctx, args[1:])
	case "docs":
		return e.runDocs(ctx, args[1:])
	case "notifications":
		return e.runNotifications(ctx, args[1:])
	case "branding":
		return e.runBranding(ctx, args[1:])
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// newEnv loads config, configures logging and wires the service stack.
func newEnv(out io.Writer) (*env, error) {
	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.PrettyLogging(),
	})

	store, err := credstore.New(cfg.Credentials.Path)
	if err != nil {
		return nil, err
	}

	api := client.New(client.Options{
		BaseURL: cfg.ResolveAPIBaseURL(),
		Timeout: cfg.APITimeout(),
		Tokens:  store,
		Logger:  logger.Component("client"),
	})

	return &env{
		cfg:   cfg,
		store: store,
		svc:   services.NewServices(api, store, logger.Component("services")),
		out:   out,
	}, nil
}

// configPath honors the override env var, falling back to the conventional
// location next to the binary's working directory.
func configPath() string {
	return config.GetEnv("ALUMNISPHERE_CONFIG", "configs/config.yaml")
}

// printf writes command output. All rendering funnels through here so tests
// can capture it.
func (e *env) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.out, format, args...)
}

var errMissingArgument = errors.New("missing argument")

// requireArg returns the first positional argument or fails with a usage
// hint.
func requireArg(args []string, hint string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("%w: %s", errMissingArgument, hint)
	}
	return args[0], nil
}

// stderrIsTerminal is a crude check used to decide whether upload progress
// is worth printing.
func stderrIsTerminal() bool {
	info, err := os.Stderr.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
