package cmd

import (
	"os"

	"github.com/portaldevagas/vagas-cli/internal/config"
	"github.com/portaldevagas/vagas-cli/internal/credential"
	"github.com/portaldevagas/vagas-cli/internal/log"
	"github.com/portaldevagas/vagas-cli/internal/platform"
	"github.com/portaldevagas/vagas-cli/internal/session"
	"github.com/portaldevagas/vagas-cli/internal/tui"
	"github.com/portaldevagas/vagas-cli/internal/version"
)

// App bundles the wired dependencies a command needs. Commands build it
// once at the top of their RunE instead of reaching for globals.
type App struct {
	Config     *config.Config
	Logger     *log.Logger
	Store      *credential.Store
	Client     *platform.Client
	Controller *session.Controller
	Navigator  *tui.PrintNavigator
}

// newApp resolves configuration and wires the session stack. The session
// is hydrated from the credential store, so commands see any login from a
// previous invocation.
func newApp() (*App, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := log.New(log.Config{
		Level:          log.ParseLevel(cfg.LogLevel),
		Format:         log.ParseFormat(cfg.LogFormat),
		Output:         log.OutputStderr(),
		ServiceName:    "vagas",
		ServiceVersion: version.Version,
	})
	log.SetDefaultLogger(logger)

	store := credential.New(cfg.CredentialDir, logger)
	client := platform.NewClient(cfg.APIURL)
	nav := tui.NewPrintNavigator(os.Stdout)

	ctrl := session.NewController(store, client, nav, logger)
	ctrl.Hydrate()

	// Restore the bearer token for API calls made outside the controller
	if token, ok := store.LoadToken(); ok {
		client.SetToken(token)
	}

	return &App{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		Client:     client,
		Controller: ctrl,
		Navigator:  nav,
	}, nil
}
