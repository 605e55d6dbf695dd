package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/store"
	"github.com/MKhiriev/go-hair-salon/models"
)

// documentService relays one call per operation to a single collection.
// It backs the lead, blog and product services directly and is embedded by
// the others.
type documentService struct {
	repository store.DocumentRepository
	logger     *logger.Logger
}

func newDocumentService(repository store.DocumentRepository, logger *logger.Logger) *documentService {
	return &documentService{
		repository: repository,
		logger:     logger,
	}
}

// Create inserts doc as-is. A nil document (JSON null body) is rejected with
// ErrInvalidDataProvided.
func (s *documentService) Create(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	if doc == nil {
		logger.FromContext(ctx).Error().Msg("nil document provided")
		return models.InsertResult{}, ErrInvalidDataProvided
	}

	res, err := s.repository.Insert(ctx, doc)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("document insert failed: %w", err)
	}

	return res, nil
}

func (s *documentService) List(ctx context.Context) ([]models.Document, error) {
	docs, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("document listing failed: %w", err)
	}

	return docs, nil
}

// Find returns the documents with the given id as a list; it is empty when
// nothing matches.
func (s *documentService) Find(ctx context.Context, id string) ([]models.Document, error) {
	docs, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("document search by id failed: %w", err)
	}

	return docs, nil
}

func (s *documentService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	res, err := s.repository.DeleteByID(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("document delete failed: %w", err)
	}

	return res, nil
}
