package service

import (
	"github.com/nutriguide/go-nutri-client/internal/adapter"
	"github.com/nutriguide/go-nutri-client/internal/logger"
	"github.com/nutriguide/go-nutri-client/internal/store"
)

type ClientServices struct {
	SessionService SessionService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewSessionService(serverAdapter, localStore.CredentialRepository, log),
	}
}
