package container

import (
	"context"

	"timeoff/internal/api"
	"timeoff/internal/config"
	"timeoff/internal/session"
	"timeoff/pkg/logger"
	"timeoff/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	RedisClient *redis.Client
	Session     *session.Store
	API         *api.Client
}

// New creates a new dependency injection container. Redis (and with it the
// persisted session state) is optional: without it the DAL still works,
// history and favorites just require explicit user ids.
func New(cfg *config.Config, log *logger.Logger, profileID string) (*Container, error) {
	var redisClient *redis.Client
	var sessionStore *session.Store

	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, log.Logger)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, proceeding without session state")
		} else {
			redisClient = client
			sessionStore = session.NewStore(client, profileID)
			log.Info("Redis client initialized successfully")
		}
	} else {
		log.Info("Redis URL not configured, proceeding without session state")
	}

	opts := []api.Option{}
	if sessionStore != nil {
		opts = append(opts, api.WithCurrentUser(func(ctx context.Context) string {
			user, err := sessionStore.CurrentUser(ctx)
			if err != nil || user == nil {
				return ""
			}
			return user.ID
		}))
	}

	return &Container{
		Config:      cfg,
		Logger:      log,
		RedisClient: redisClient,
		Session:     sessionStore,
		API:         api.New(cfg, log, opts...),
	}, nil
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}

// HasSession returns true if persisted session state is available.
func (c *Container) HasSession() bool {
	return c.Session != nil
}
