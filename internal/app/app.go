// Package app wires the application together: configuration, logging, the
// transport client, the API services, and the state slices all meet here.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/nashtto/partnerctl/internal/api"
	"github.com/nashtto/partnerctl/internal/config"
	"github.com/nashtto/partnerctl/internal/flags"
	"github.com/nashtto/partnerctl/internal/logging"
	"github.com/nashtto/partnerctl/internal/session"
	"github.com/nashtto/partnerctl/internal/store"
)

// App is the composition root. Commands reach every subsystem through it.
type App struct {
	Config *config.Config
	Log    *logrus.Logger

	Client   *api.Client
	Sessions *session.Store
	Tokens   *store.TokenHolder
	Flags    *flags.Service

	Auth       *store.AuthStore
	Restaurant *store.RestaurantStore
	Menu       *store.MenuStore
	Orders     *store.OrdersStore
}

// New builds the app from configuration and restores any persisted session so
// commands start out authenticated when possible.
func New(cfg *config.Config) (*App, error) {
	log := logging.New(cfg.Log.Level)

	dir := cfg.Storage.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".partnerctl", "session")
	}
	sessions, err := session.NewStore(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open session storage: %w", err)
	}

	tokens := &store.TokenHolder{}
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), tokens, log)

	auth := store.NewAuthStore(api.NewAuthService(client), sessions, tokens, log)
	restaurant := store.NewRestaurantStore(api.NewVendorService(client), log)
	menu := store.NewMenuStore(api.NewMenuService(client), log)
	orders := store.NewOrdersStore(api.NewOrdersService(client), log)

	if restored, err := auth.Restore(); err != nil {
		log.WithError(err).Warn("failed to restore session")
	} else if restored {
		log.Debug("session restored")
	}

	return &App{
		Config:     cfg,
		Log:        log,
		Client:     client,
		Sessions:   sessions,
		Tokens:     tokens,
		Flags:      flags.NewService(cfg.Features),
		Auth:       auth,
		Restaurant: restaurant,
		Menu:       menu,
		Orders:     orders,
	}, nil
}
