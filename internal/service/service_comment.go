package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/store"
	"github.com/MKhiriev/go-hair-salon/models"
)

type commentService struct {
	*documentService
}

func NewCommentService(repository store.DocumentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		documentService: newDocumentService(repository, logger),
	}
}

// ListByEmail returns the comments whose userEmail equals email.
func (s *commentService) ListByEmail(ctx context.Context, email string) ([]models.Document, error) {
	if email == "" {
		return nil, ErrInvalidDataProvided
	}

	docs, err := s.repository.FindByField(ctx, models.FieldUserEmail, email)
	if err != nil {
		return nil, fmt.Errorf("comment search by email failed: %w", err)
	}

	return docs, nil
}
