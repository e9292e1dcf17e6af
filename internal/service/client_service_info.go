package service

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/models"
)

type clientInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientInfoService(serverAdapter adapter.ServerAdapter) ClientInfoService {
	return &clientInfoService{adapter: serverAdapter}
}

func (c *clientInfoService) Balance(ctx context.Context, name string) (models.LeaveBalance, error) {
	balance, err := c.adapter.LeaveBalance(ctx, name)
	return balance, mapAdapterError(err)
}

func (c *clientInfoService) Greeting(ctx context.Context, text string) (string, error) {
	greeting, err := c.adapter.Hello(ctx, text)
	return greeting, mapAdapterError(err)
}

func (c *clientInfoService) Version(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	return version, mapAdapterError(err)
}
