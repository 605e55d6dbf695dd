package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/store"
	"github.com/MKhiriev/go-hair-salon/models"
)

// userService manages account documents. Registration performs no
// uniqueness check on email.
type userService struct {
	*documentService
	userRepository store.UserRepository
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		documentService: newDocumentService(userRepository, logger),
		userRepository:  userRepository,
	}
}

func (s *userService) ListAdmins(ctx context.Context) ([]models.Document, error) {
	docs, err := s.userRepository.FindAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin listing failed: %w", err)
	}

	return docs, nil
}

// MakeAdmin grants the admin role to the account with the given id. An
// unknown id is upserted into a new account holding only the role.
func (s *userService) MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	res, err := s.userRepository.SetAdminRole(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("granting admin role failed")
		return models.UpdateResult{}, fmt.Errorf("granting admin role failed: %w", err)
	}

	return res, nil
}
