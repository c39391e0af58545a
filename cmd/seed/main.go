package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fendiRahmans/portofolio-api/internal/models"
	"github.com/fendiRahmans/portofolio-api/internal/repository"
	"github.com/fendiRahmans/portofolio-api/pkg/config"
	"github.com/fendiRahmans/portofolio-api/pkg/database"
	"github.com/fendiRahmans/portofolio-api/pkg/logger"
)

// Seeds the bootstrap admin account and the default settings. Safe to run
// repeatedly: existing rows are left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := repository.NewUserRepository(db)
	settings := repository.NewSettingRepository(db)

	if _, err := users.FindByEmail(ctx, cfg.Seed.AdminEmail); err == nil {
		logr.Sugar().Infow("admin user already present", "email", cfg.Seed.AdminEmail)
	} else if errors.Is(err, sql.ErrNoRows) {
		hash, herr := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
		if herr != nil {
			logr.Sugar().Fatalw("failed to hash admin password", "error", herr)
		}
		admin := &models.User{
			Name:         cfg.Seed.AdminName,
			Email:        cfg.Seed.AdminEmail,
			PasswordHash: string(hash),
		}
		if cerr := users.Create(ctx, admin); cerr != nil {
			logr.Sugar().Fatalw("failed to seed admin user", "error", cerr)
		}
		logr.Sugar().Infow("seeded admin user", "email", admin.Email, "id", admin.ID)
	} else {
		logr.Sugar().Fatalw("failed to check admin user", "error", err)
	}

	defaults := map[string]string{
		models.SettingAvailableForHire: "false",
	}
	for name, value := range defaults {
		if _, err := settings.GetByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, sql.ErrNoRows) {
			logr.Sugar().Fatalw("failed to check setting", "name", name, "error", err)
		}
		if err := settings.Create(ctx, &models.Setting{Name: name, Value: value}); err != nil {
			logr.Sugar().Fatalw("failed to seed setting", "name", name, "error", err)
		}
		logr.Sugar().Infow("seeded setting", "name", name)
	}

	logr.Sugar().Infow("seed complete")
}
