// Package cli implements the opentok command line tool: a thin developer
// utility over the SDK for minting tokens and managing sessions from
// scripts and shells.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/streamsign/opentok-go/pkg/cryptox"
	"github.com/streamsign/opentok-go/pkg/opentok"
	"github.com/streamsign/opentok-go/pkg/slogx"
)

// App wires the SDK client, logger and output stream together for one CLI
// invocation.
type App struct {
	// Out receives command results; logs go to stderr. Defaults to stdout.
	Out io.Writer

	cfg    Config
	logger *slog.Logger
	client *opentok.OpenTok
}

// New builds the application from config. The API secret itself is never
// logged; debug output carries only its fingerprint.
func New(cfg Config) *App {
	logger := slogx.New(slogx.Config{
		Service: "opentok",
		Version: opentok.Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	client := opentok.New(cfg.APIKey, cfg.APISecret)
	client.BaseURL = cfg.APIURL
	client.Logger = logger

	logger.Debug("client configured",
		"api_key", cfg.APIKey,
		"api_secret_fp", cryptox.Fingerprint(cfg.APISecret),
		"api_url", cfg.APIURL,
	)

	return &App{
		Out:    os.Stdout,
		cfg:    cfg,
		logger: logger,
		client: client,
	}
}

// Run dispatches a subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: opentok <create-session|token|stream-info> [flags]")
	}

	switch args[0] {
	case "create-session":
		return a.runCreateSession(ctx, args[1:])
	case "token":
		return a.runToken(args[1:])
	case "stream-info":
		return a.runStreamInfo(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) runCreateSession(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("create-session", pflag.ContinueOnError)
	location := flags.String("location", "", "IP address hint for session placement")
	media := flags.String("media", "routed", "media mode: relayed or routed")
	archive := flags.String("archive", "manual", "archive mode: always or manual")
	if err := flags.Parse(args); err != nil {
		return err
	}

	opts := opentok.SessionOptions{Location: *location}

	switch strings.ToLower(*media) {
	case "relayed":
		opts.MediaMode = opentok.MediaModeRelayed
	case "routed":
		opts.MediaMode = opentok.MediaModeRouted
	default:
		return fmt.Errorf("unknown media mode %q", *media)
	}

	switch strings.ToLower(*archive) {
	case "always":
		opts.ArchiveMode = opentok.ArchiveModeAlways
	case "manual":
		opts.ArchiveMode = opentok.ArchiveModeManual
	default:
		return fmt.Errorf("unknown archive mode %q", *archive)
	}

	sessionID, err := a.client.CreateSession(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Out, sessionID)
	return nil
}

func (a *App) runToken(args []string) error {
	flags := pflag.NewFlagSet("token", pflag.ContinueOnError)
	session := flags.String("session", "", "session ID to mint the token for")
	role := flags.String("role", "publisher", "role: publisher, subscriber or moderator")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *session == "" {
		return errors.New("token: --session is required")
	}

	r, err := ParseRole(*role)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Out, a.client.GenerateToken(*session, r))
	return nil
}

func (a *App) runStreamInfo(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("stream-info", pflag.ContinueOnError)
	session := flags.String("session", "", "session ID the stream belongs to")
	stream := flags.String("stream", "", "stream ID to look up")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *session == "" || *stream == "" {
		return errors.New("stream-info: --session and --stream are required")
	}

	info, err := a.client.GetStreamInfo(ctx, *session, *stream)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

// ParseRole maps a user-supplied role name onto the enumeration.
func ParseRole(s string) (opentok.Role, error) {
	switch strings.ToLower(s) {
	case "publisher":
		return opentok.RolePublisher, nil
	case "subscriber":
		return opentok.RoleSubscriber, nil
	case "moderator":
		return opentok.RoleModerator, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}
