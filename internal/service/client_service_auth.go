package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (c *clientAuthService) SignIn(ctx context.Context, name string) (models.Session, error) {
	session, err := c.adapter.SignIn(ctx, name)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientAuthService.SignIn").Msg("sign in failed")
		return models.Session{}, mapAdapterError(err)
	}

	session.SignedIn = true
	if session.Token == "" {
		session.Token = c.adapter.Token()
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	return session, nil
}

func (c *clientAuthService) SignOut(ctx context.Context) error {
	c.mu.Lock()
	c.session = models.Session{}
	c.mu.Unlock()

	if err := c.adapter.SignOut(ctx); err != nil {
		c.logger.Err(err).Str("func", "*clientAuthService.SignOut").Msg("server sign out failed")
		return mapAdapterError(err)
	}
	return nil
}

func (c *clientAuthService) Session() models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *clientAuthService) SecretMessage(ctx context.Context) (string, error) {
	if !c.Session().SignedIn {
		return "", ErrUnauthorized
	}

	message, err := c.adapter.SecretMessage(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return message, nil
}
