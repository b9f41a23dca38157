// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/recipebox/recipebox/internal/config"
	"github.com/recipebox/recipebox/internal/core"
	"github.com/recipebox/recipebox/internal/user"
)

// Seeds a staff superuser account. Intended for operational bootstrap; the
// HTTP surface never creates privileged accounts.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	email := flag.String("email", "", "superuser email (required)")
	password := flag.String("password", "", "superuser password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		slog.Error("both -email and -password are required")
		os.Exit(2)
	}

	if err := run(*configPath, *email, *password); err != nil {
		slog.Error("create superuser failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := core.Migrate(ctx, db); err != nil {
		return err
	}

	service := user.NewService(user.NewRepository(db.DB))

	exists, err := service.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("an account with email %q already exists", email)
	}

	created, err := service.CreateSuperuser(ctx, email, password)
	if err != nil {
		return err
	}

	slog.Info("superuser created", "id", created.ID, "email", created.Email)
	return nil
}
