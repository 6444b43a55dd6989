package http

import (
	"github.com/kmori/techtrends/internal/auth"
	"github.com/kmori/techtrends/internal/logger"
	"github.com/kmori/techtrends/internal/objectstore"
	"github.com/kmori/techtrends/internal/service"
)

// Handler carries every dependency the HTTP layer needs. The verifier and
// the upload issuer are injected as interfaces so tests can stub them.
type Handler struct {
	services *service.Services
	verifier auth.Verifier
	uploads  objectstore.UploadURLIssuer

	logger *logger.Logger
}

func NewHandler(services *service.Services, verifier auth.Verifier, uploads objectstore.UploadURLIssuer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		verifier: verifier,
		uploads:  uploads,
		logger:   logger,
	}
}
