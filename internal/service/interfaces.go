package service

import (
	"context"

	"github.com/MKhiriev/go-hair-salon/models"
)

// AuthService issues and verifies access tokens and answers role questions.
type AuthService interface {
	IssueToken(ctx context.Context, email string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type UserService interface {
	Create(ctx context.Context, doc models.Document) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Document, error)
	ListAdmins(ctx context.Context) ([]models.Document, error)
	MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type LeadService interface {
	Create(ctx context.Context, doc models.Document) (models.InsertResult, error)
}

type BlogService interface {
	Create(ctx context.Context, doc models.Document) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Document, error)
	Find(ctx context.Context, id string) ([]models.Document, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type CommentService interface {
	Create(ctx context.Context, doc models.Document) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Document, error)
	ListByEmail(ctx context.Context, email string) ([]models.Document, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type ProductService interface {
	List(ctx context.Context) ([]models.Document, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type OrderService interface {
	Place(ctx context.Context, order models.Document) (models.InsertResult, error)
}
