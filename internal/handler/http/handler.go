package http

import (
	"time"

	"github.com/MKhiriev/go-hair-salon/internal/config"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, cors config.CORS, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cors.AllowedOrigins,
		requestTimeout: server.RequestTimeout,
		logger:         logger,
	}
}
