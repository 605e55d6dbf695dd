package service

import (
	"context"

	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/store"
	"github.com/MKhiriev/go-hair-salon/models"
)

type orderService struct {
	*documentService
}

func NewOrderService(repository store.DocumentRepository, logger *logger.Logger) OrderService {
	return &orderService{
		documentService: newDocumentService(repository, logger),
	}
}

// Place stores the order document unchanged.
func (s *orderService) Place(ctx context.Context, order models.Document) (models.InsertResult, error) {
	return s.Create(ctx, order)
}
