package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/mock"
	"github.com/MKhiriev/go-hair-salon/internal/store"
	"github.com/MKhiriev/go-hair-salon/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestUserService_Create_NoUniquenessCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())
	ctx := context.Background()

	doc := models.Document{"email": "a@x.com"}
	repo.EXPECT().Insert(ctx, doc).Return(models.InsertResult{Acknowledged: true}, nil).Times(2)

	_, err := svc.Create(ctx, doc)
	require.NoError(t, err)
	_, err = svc.Create(ctx, doc)
	require.NoError(t, err)
}

func TestUserService_ListAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())
	ctx := context.Background()

	admins := []models.Document{{"email": "a@x.com", "role": "admin"}}
	repo.EXPECT().FindAdmins(ctx).Return(admins, nil)

	got, err := svc.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, admins, got)
}

func TestUserService_ListAdmins_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	repo.EXPECT().FindAdmins(gomock.Any()).Return(nil, store.ErrFindingDocuments)

	_, err := svc.ListAdmins(context.Background())
	assert.ErrorIs(t, err, store.ErrFindingDocuments)
}

func TestUserService_MakeAdmin_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())
	ctx := context.Background()

	id := primitive.NewObjectID()
	want := models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}
	repo.EXPECT().SetAdminRole(ctx, id.Hex()).Return(want, nil)

	got, err := svc.MakeAdmin(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_MakeAdmin_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	repo.EXPECT().SetAdminRole(gomock.Any(), "nope").Return(models.UpdateResult{}, store.ErrInvalidID)

	_, err := svc.MakeAdmin(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrInvalidID)
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())
	ctx := context.Background()

	id := primitive.NewObjectID().Hex()
	repo.EXPECT().DeleteByID(ctx, id).Return(models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	res, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository:    mock.NewMockUserRepository(ctrl),
		LeadRepository:    mock.NewMockDocumentRepository(ctrl),
		BlogRepository:    mock.NewMockDocumentRepository(ctrl),
		CommentRepository: mock.NewMockDocumentRepository(ctrl),
		ProductRepository: mock.NewMockDocumentRepository(ctrl),
		OrderRepository:   mock.NewMockDocumentRepository(ctrl),
	}

	services := NewServices(storages, testAppConfig(), logger.Nop())
	require.NotNil(t, services)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.LeadService)
	assert.NotNil(t, services.BlogService)
	assert.NotNil(t, services.CommentService)
	assert.NotNil(t, services.ProductService)
	assert.NotNil(t, services.OrderService)
}
