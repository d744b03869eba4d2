package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"

	"github.com/colisexpress/delivery-system/pkg/client"
	"github.com/colisexpress/delivery-system/pkg/client/auth"
	"github.com/colisexpress/delivery-system/pkg/client/guard"
	"github.com/colisexpress/delivery-system/pkg/client/session"
)

// errLoginRequired asks the user to authenticate before retrying.
var errLoginRequired = errors.New("not logged in, run `dashboard login` first")

type dashboardConfig struct {
	APIURL string `env:"DASHBOARD_API_URL,default=http://localhost:8080"`
}

// app wires the session store, the API client, and the session manager for
// one command invocation.
type app struct {
	store session.Store
	api   *client.Client
	auth  *auth.Manager
}

func newApp() (*app, error) {
	store, err := session.NewFileStore()
	if err != nil {
		return nil, err
	}

	var cfg dashboardConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	// A 401 anywhere tears the session down; in a terminal the "redirect"
	// is a hint about what to do next.
	notifyLogin := func(string) {
		fmt.Fprintln(os.Stderr, "session expired, run `dashboard login` to continue")
	}

	api := client.New(cfg.APIURL, store, client.WithNavigate(notifyLogin))
	manager := auth.NewManager(api, store, auth.WithNavigate(func(string) {}))
	manager.Initialize()

	return &app{store: store, api: api, auth: manager}, nil
}

// requireRoles gates a command on the current session the same way protected
// views are gated. location names the command for the post-login hint.
func (a *app) requireRoles(location string, roles ...string) error {
	result := guard.Evaluate(a.auth, location, roles)
	switch result.Decision {
	case guard.DecisionAllow:
		return nil
	case guard.DecisionRedirectLogin:
		return errLoginRequired
	case guard.DecisionRedirectUnauthorized:
		user, _ := a.auth.CurrentUser()
		return fmt.Errorf("role %s may not use %s (home view: %s)",
			user.Role, location, guard.DefaultRedirectFor(user))
	default:
		return errors.New("session still loading, try again")
	}
}
