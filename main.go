package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"timeoff/internal/config"
	"timeoff/internal/container"
	"timeoff/internal/domain"
	"timeoff/pkg/logger"
)

// Demo binary: logs in, then prints this year's holidays and the current
// user's pod calendar through the data access layer. Falls back to the
// built-in mock dataset when no backend is running.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	profileID := os.Getenv("TIMEOFF_PROFILE_ID")
	if profileID == "" {
		profileID = "local"
	}

	c, err := container.New(cfg, log, profileID)
	if err != nil {
		log.WithError(err).Fatal("Failed to build container")
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := c.API.Login(ctx)
	if err != nil {
		log.WithError(err).Fatal("Login failed")
	}
	log.Info("Logged in",
		zap.String("user_id", user.ID),
		zap.String("name", user.Name))

	if c.HasSession() {
		if err := c.Session.SetCurrentUser(ctx, user); err != nil {
			log.WithError(err).Warn("Failed to persist session user")
		}
	}

	year := time.Now().Year()
	holidays, err := c.API.Holidays(ctx, year)
	if err != nil {
		log.WithError(err).Error("Failed to fetch holidays")
	}
	for _, h := range holidays {
		log.Info("Holiday",
			zap.String("date", h.Date),
			zap.String("name", h.Name),
			zap.String("country", h.Country))
	}

	rows, err := c.API.PodLeaves(ctx, user.TeamID, nil, domain.DateRange{})
	if err != nil {
		log.WithError(err).Error("Failed to fetch pod calendar")
	}
	for _, row := range rows {
		log.Info("Pod member",
			zap.String("user", row.User.Name),
			zap.Int("leaves", len(row.Leaves)))
	}
}
