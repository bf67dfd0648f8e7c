// Command seed creates an API user, or resets the password of an existing
// one with --reset. There is no HTTP sign-up route.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"recipes_api/internal/config"
	"recipes_api/internal/logger"
	"recipes_api/internal/repository"
	"recipes_api/internal/service"

	"github.com/spf13/pflag"
)

const seedTimeout = 30 * time.Second

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(fs)
	username := fs.String("username", "", "user to create (required)")
	password := fs.String("password", "", "password for the user (required)")
	reset := fs.Bool("reset", false, "change the password of an existing user instead of creating one")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.Log.Level)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if err := run(ctx, cfg, *username, *password, *reset); err != nil {
		log.Errorw("seed failed", "username", *username, "err", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, username, password string, reset bool) error {
	repos, closeStore, err := repository.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = closeStore(context.Background()) }()

	auth := service.NewAuthService(repos.Auth, service.AuthConfig{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
	})

	if reset {
		if err := auth.ChangePassword(ctx, username, password); err != nil {
			return err
		}
		fmt.Printf("password updated for %s\n", username)
		return nil
	}

	id, err := auth.SignUp(ctx, username, password)
	if errors.Is(err, repository.ErrUsernameTaken) {
		return fmt.Errorf("%w (use --reset to change the password)", err)
	}
	if err != nil {
		return err
	}
	fmt.Printf("created user %s with id %s\n", username, id)
	return nil
}
