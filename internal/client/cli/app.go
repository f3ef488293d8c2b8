package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/skillswap/internal/client/client"
	"github.com/dmitrijs2005/skillswap/internal/client/config"
	"github.com/dmitrijs2005/skillswap/internal/client/router"
	"github.com/dmitrijs2005/skillswap/internal/client/task"
	"github.com/dmitrijs2005/skillswap/internal/client/viewmodels"
	"github.com/dmitrijs2005/skillswap/internal/logging"
)

type App struct {
	log    logging.Logger
	loop   *task.Loop
	router *router.Router

	market  *viewmodels.Marketplace
	users   *viewmodels.UserList
	profile *viewmodels.UserProfile

	screen router.Screen
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the CLI against the backend named in c, reading commands
// from stdin and printing to stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	api, err := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, log.With("component", "api"))
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}
	return newApp(ctx, api, log, os.Stdin, os.Stdout), nil
}

func newApp(ctx context.Context, api client.API, log logging.Logger, in io.Reader, out io.Writer) *App {
	loop := task.NewLoop(ctx)

	a := &App{
		log:     log,
		loop:    loop,
		router:  router.New(),
		market:  viewmodels.NewMarketplace(loop, api, log),
		users:   viewmodels.NewUserList(loop, api, log),
		profile: viewmodels.NewUserProfile(loop, api, log),
		reader:  bufio.NewReader(in),
		out:     out,
	}

	a.logErrors(ctx, router.ScreenMarketplace, a.market.Error.Subscribe)
	a.logErrors(ctx, router.ScreenUsers, a.users.Error.Subscribe)
	a.logErrors(ctx, router.ScreenUserProfile, a.profile.Error.Subscribe)

	return a
}

func (a *App) logErrors(ctx context.Context, screen router.Screen, subscribe func(func(string)) func()) {
	subscribe(func(msg string) {
		if msg != "" {
			a.log.Info(ctx, "view reported error", "screen", screen, "message", msg)
		}
	})
}

// Run opens the marketplace and then serves commands until the user exits
// or input ends. It returns once every request in flight has finished.
func (a *App) Run(ctx context.Context) {
	defer a.loop.Wait()

	a.println("Welcome to SkillSwap CLI (type 'help' for commands)")
	_ = a.Open(ctx, "/")

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) getStatus() string {
	switch a.screen {
	case router.ScreenUserProfile:
		if u := a.profile.User.Get(); u != nil {
			return fmt.Sprintf("(%s %s)", a.screen, a.router.UserProfileURL(u.ID))
		}
	case "":
		return ""
	}
	return fmt.Sprintf("(%s)", a.screen)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
