package http

import (
	"html/template"

	"weatherfav/internal/config"
	"weatherfav/internal/logger"
	"weatherfav/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.App

	templates *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		cfg:       cfg,
		templates: parseTemplates(),
		logger:    logger,
	}
}
