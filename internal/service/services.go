package service

import (
	"weatherfav/internal/adapter"
	"weatherfav/internal/config"
	"weatherfav/internal/logger"
	"weatherfav/internal/store"
)

type Services struct {
	AuthService      AuthService
	FavoritesService FavoritesService
}

func NewServices(storages *store.Storages, weather adapter.WeatherClient, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		FavoritesService: NewFavoritesService(storages.UserRepository, weather, logger),
	}
}
