// Package client implements the command-line application that talks to the
// creator-hub API. Each invocation runs exactly one command; the session
// token is persisted locally so consecutive commands share a login.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/creator-hub/internal/adapter"
	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/internal/store"
	"github.com/MKhiriev/creator-hub/models"
)

var (
	// ErrUnknownCommand is returned when the first argument does not name a
	// known command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNotLoggedIn is returned by commands that require a session when no
	// session has been stored locally.
	ErrNotLoggedIn = errors.New("not logged in, run the login command first")
)

const usage = `Usage: creator-hub-client <command> [flags]

Commands:
  signup          register a new account and log in
  login           log in with an existing account
  logout          log out and forget the local session
  whoami          show the locally stored session
  create-profile  create your creator profile
  me              show your own profile
  update-profile  change fields of your profile
  view            show a creator profile by username
  browse          list all creator profiles, optionally filtered by skills
  pref            get or set a named client preference
`

// App is the command-line client application.
type App struct {
	api    adapter.APIClient
	state  store.LocalStateRepository
	out    io.Writer
	logger *logger.Logger
}

func NewApp(api adapter.APIClient, state store.LocalStateRepository, out io.Writer, log *logger.Logger) (*App, error) {
	if api == nil || state == nil {
		return nil, errors.New("api client and local state are required")
	}

	return &App{
		api:    api,
		state:  state,
		out:    out,
		logger: log,
	}, nil
}

// Run executes the command named by args[0]. A stored session, if any, is
// restored onto the API client before the command runs.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUnknownCommand
	}

	if session, err := a.state.GetSession(ctx); err == nil {
		a.api.SetToken(session.Token)
	}

	command, rest := args[0], args[1:]
	switch command {
	case "signup":
		return a.signup(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "create-profile":
		return a.createProfile(ctx, rest)
	case "me":
		return a.myProfile(ctx)
	case "update-profile":
		return a.updateProfile(ctx, rest)
	case "view":
		return a.viewProfile(ctx, rest)
	case "browse":
		return a.browse(ctx, rest)
	case "pref":
		return a.pref(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	username := fs.String("username", "", "public handle")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	response, err := a.api.Signup(ctx, models.SignupRequest{
		Email:    *email,
		Username: *username,
		Password: *password,
	})
	if err != nil {
		return err
	}

	if err = a.saveSession(ctx, response); err != nil {
		return err
	}

	return a.printJSON(response.User)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	response, err := a.api.Login(ctx, models.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	if err = a.saveSession(ctx, response); err != nil {
		return err
	}

	return a.printJSON(response.User)
}

// logout clears the local session even when the server call fails, so a
// broken network connection cannot leave the client stuck logged in.
func (a *App) logout(ctx context.Context) error {
	apiErr := a.api.Logout(ctx)

	if err := a.state.ClearSession(ctx); err != nil {
		return err
	}
	if apiErr != nil {
		a.logger.Warn().Err(apiErr).Msg("server logout failed, local session cleared anyway")
	}

	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	session, err := a.state.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return ErrNotLoggedIn
	}
	if err != nil {
		return err
	}

	return a.printJSON(session)
}

func (a *App) createProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-profile", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	bio := fs.String("bio", "", "short description")
	avatar := fs.String("avatar", "", "avatar URL")
	skills := fs.String("skills", "", "comma separated skill list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	request := models.CreateProfileRequest{
		Name:   *name,
		Skills: splitSkills(*skills),
	}
	if *bio != "" {
		request.Bio = bio
	}
	if *avatar != "" {
		request.ProfileImageURL = avatar
	}

	profile, err := a.api.CreateProfile(ctx, request)
	if err != nil {
		return err
	}

	return a.printJSON(profile)
}

func (a *App) myProfile(ctx context.Context) error {
	profile, err := a.api.MyProfile(ctx)
	if err != nil {
		return err
	}
	if profile == nil {
		fmt.Fprintln(a.out, "no profile yet, run create-profile")
		return nil
	}

	return a.printJSON(profile)
}

// updateProfile sends only the flags the user actually set, so unset fields
// keep their server-side values.
func (a *App) updateProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-profile", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	bio := fs.String("bio", "", "short description, empty clears it")
	avatar := fs.String("avatar", "", "avatar URL, empty clears it")
	skills := fs.String("skills", "", "comma separated skill list, replaces the old one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var update models.ProfileUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			update.Name = name
		case "bio":
			update.Bio = bio
		case "avatar":
			update.ProfileImageURL = avatar
		case "skills":
			parsed := splitSkills(*skills)
			update.Skills = &parsed
		}
	})

	profile, err := a.api.UpdateProfile(ctx, update)
	if err != nil {
		return err
	}

	return a.printJSON(profile)
}

func (a *App) viewProfile(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return errors.New("usage: view <username>")
	}

	profile, err := a.api.ProfileByUsername(ctx, args[0])
	if err != nil {
		return err
	}

	return a.printJSON(profile)
}

func (a *App) browse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)
	skills := fs.String("skills", "", "comma separated skill filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	profiles, err := a.api.ListProfiles(ctx, *skills)
	if err != nil {
		return err
	}

	return a.printJSON(profiles)
}

// pref gets (one argument) or sets (two arguments) a named preference.
func (a *App) pref(ctx context.Context, args []string) error {
	switch len(args) {
	case 1:
		value, err := a.state.GetPreference(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, value)
		return nil
	case 2:
		return a.state.SetPreference(ctx, args[0], args[1])
	default:
		return errors.New("usage: pref <name> [<value>]")
	}
}

func (a *App) saveSession(ctx context.Context, response models.AuthResponse) error {
	return a.state.SaveSession(ctx, models.LocalSession{
		Email:    response.User.Email,
		Username: response.User.Username,
		Token:    response.AccessToken,
		SavedAt:  time.Now(),
	})
}

func (a *App) printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, string(encoded))
	return nil
}

func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
