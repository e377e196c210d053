package useCases

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/larriantoniy/ig_user_client/internal/ports"
)

type ClientFactory func(cfg *ports.AccountConfig, log *slog.Logger) (ports.AccountClient, error)

// ReadyClient is an account client holding a working session.
type ReadyClient struct {
	Name   string
	Client ports.AccountClient
}

type Runner struct {
	cfgRepo ports.AccountConfigRepo
	store   ports.SessionStore
	log     *slog.Logger
	factory ClientFactory
}

func NewRunner(
	cfgRepo ports.AccountConfigRepo,
	store ports.SessionStore,
	log *slog.Logger,
	factory ClientFactory,
) *Runner {
	return &Runner{cfgRepo: cfgRepo, store: store, log: log, factory: factory}
}

// StartAll поднимает клиентов по всем аккаунтам. Клиенты приходят в канал по
// мере готовности; канал закрывается, когда все аккаунты обработаны.
func (r *Runner) StartAll(ctx context.Context) (<-chan ReadyClient, error) {
	accounts, err := r.cfgRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	ch := make(chan ReadyClient)

	go func() {
		var wg sync.WaitGroup

		for _, name := range accounts {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()

				cfg, err := r.cfgRepo.GetAccountConfig(ctx, name)
				if err != nil {
					r.log.Error("GetAccountConfig failed", "account", name, "error", err)
					return
				}

				l := r.log.With("account", name)
				cli, err := r.factory(cfg, l)
				if err != nil {
					l.Error("factory failed", "error", err)
					return
				}

				if err := r.Connect(ctx, name, cli); err != nil {
					l.Error("connect failed", "error", err)
					return
				}

				l.Info("client ready")
				select {
				case ch <- ReadyClient{Name: name, Client: cli}:
				case <-ctx.Done():
				}
			}(name)
		}

		wg.Wait()
		close(ch)
	}()

	return ch, nil
}

// Connect reuses a stored session when it still works, otherwise logs in and
// stores the fresh cookies.
func (r *Runner) Connect(ctx context.Context, name string, cli ports.AccountClient) error {
	cookies, err := r.store.Load(ctx, name)
	switch {
	case err == nil:
		cli.RestoreSession(cookies)
		_, verr := cli.CurrentProfile(ctx)
		if verr == nil {
			r.log.Info("session restored", "account", name)
			return nil
		}
		r.log.Warn("stored session rejected, logging in", "account", name, "error", verr)
	case errors.Is(err, ports.ErrSessionNotFound):
		r.log.Debug("no stored session", "account", name)
	default:
		r.log.Warn("session store load failed", "account", name, "error", err)
	}

	if _, err := cli.Login(ctx); err != nil {
		return err
	}

	if err := r.store.Save(ctx, name, cli.SessionCookies()); err != nil {
		r.log.Warn("session store save failed", "account", name, "error", err)
	}
	return nil
}
