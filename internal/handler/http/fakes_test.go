package http

import (
	"context"

	"github.com/MKhiriev/go-hair-salon/internal/service"
	"github.com/MKhiriev/go-hair-salon/models"
)

// Func-field fakes: a nil field answers with zero values.

type mockAuthService struct {
	issueTokenFn func(ctx context.Context, email string) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
	isAdminFn    func(ctx context.Context, email string) (bool, error)
}

func (m *mockAuthService) IssueToken(ctx context.Context, email string) (models.Token, error) {
	if m.issueTokenFn == nil {
		return models.Token{}, nil
	}
	return m.issueTokenFn(ctx, email)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if m.isAdminFn == nil {
		return false, nil
	}
	return m.isAdminFn(ctx, email)
}

// tokenFor accepts a fixed set of token strings, each mapped to an email.
func tokenFor(tokens map[string]string) func(context.Context, string) (models.Token, error) {
	return func(_ context.Context, tokenString string) (models.Token, error) {
		email, ok := tokens[tokenString]
		if !ok {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{SignedString: tokenString, Email: email}, nil
	}
}

// adminsOf reports true for the given emails only.
func adminsOf(emails ...string) func(context.Context, string) (bool, error) {
	return func(_ context.Context, email string) (bool, error) {
		for _, e := range emails {
			if e == email {
				return true, nil
			}
		}
		return false, nil
	}
}

type mockUserService struct {
	createFn     func(ctx context.Context, doc models.Document) (models.InsertResult, error)
	listFn       func(ctx context.Context) ([]models.Document, error)
	listAdminsFn func(ctx context.Context) ([]models.Document, error)
	makeAdminFn  func(ctx context.Context, id string) (models.UpdateResult, error)
	deleteFn     func(ctx context.Context, id string) (models.DeleteResult, error)
}

func (m *mockUserService) Create(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	if m.createFn == nil {
		return models.InsertResult{}, nil
	}
	return m.createFn(ctx, doc)
}

func (m *mockUserService) List(ctx context.Context) ([]models.Document, error) {
	if m.listFn == nil {
		return []models.Document{}, nil
	}
	return m.listFn(ctx)
}

func (m *mockUserService) ListAdmins(ctx context.Context) ([]models.Document, error) {
	if m.listAdminsFn == nil {
		return []models.Document{}, nil
	}
	return m.listAdminsFn(ctx)
}

func (m *mockUserService) MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	if m.makeAdminFn == nil {
		return models.UpdateResult{}, nil
	}
	return m.makeAdminFn(ctx, id)
}

func (m *mockUserService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	if m.deleteFn == nil {
		return models.DeleteResult{}, nil
	}
	return m.deleteFn(ctx, id)
}

type mockLeadService struct {
	createFn func(ctx context.Context, doc models.Document) (models.InsertResult, error)
}

func (m *mockLeadService) Create(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	if m.createFn == nil {
		return models.InsertResult{}, nil
	}
	return m.createFn(ctx, doc)
}

type mockBlogService struct {
	createFn func(ctx context.Context, doc models.Document) (models.InsertResult, error)
	listFn   func(ctx context.Context) ([]models.Document, error)
	findFn   func(ctx context.Context, id string) ([]models.Document, error)
	deleteFn func(ctx context.Context, id string) (models.DeleteResult, error)
}

func (m *mockBlogService) Create(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	if m.createFn == nil {
		return models.InsertResult{}, nil
	}
	return m.createFn(ctx, doc)
}

func (m *mockBlogService) List(ctx context.Context) ([]models.Document, error) {
	if m.listFn == nil {
		return []models.Document{}, nil
	}
	return m.listFn(ctx)
}

func (m *mockBlogService) Find(ctx context.Context, id string) ([]models.Document, error) {
	if m.findFn == nil {
		return []models.Document{}, nil
	}
	return m.findFn(ctx, id)
}

func (m *mockBlogService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	if m.deleteFn == nil {
		return models.DeleteResult{}, nil
	}
	return m.deleteFn(ctx, id)
}

type mockCommentService struct {
	createFn      func(ctx context.Context, doc models.Document) (models.InsertResult, error)
	listFn        func(ctx context.Context) ([]models.Document, error)
	listByEmailFn func(ctx context.Context, email string) ([]models.Document, error)
	deleteFn      func(ctx context.Context, id string) (models.DeleteResult, error)
}

func (m *mockCommentService) Create(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	if m.createFn == nil {
		return models.InsertResult{}, nil
	}
	return m.createFn(ctx, doc)
}

func (m *mockCommentService) List(ctx context.Context) ([]models.Document, error) {
	if m.listFn == nil {
		return []models.Document{}, nil
	}
	return m.listFn(ctx)
}

func (m *mockCommentService) ListByEmail(ctx context.Context, email string) ([]models.Document, error) {
	if m.listByEmailFn == nil {
		return []models.Document{}, nil
	}
	return m.listByEmailFn(ctx, email)
}

func (m *mockCommentService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	if m.deleteFn == nil {
		return models.DeleteResult{}, nil
	}
	return m.deleteFn(ctx, id)
}

type mockProductService struct {
	listFn   func(ctx context.Context) ([]models.Document, error)
	deleteFn func(ctx context.Context, id string) (models.DeleteResult, error)
}

func (m *mockProductService) List(ctx context.Context) ([]models.Document, error) {
	if m.listFn == nil {
		return []models.Document{}, nil
	}
	return m.listFn(ctx)
}

func (m *mockProductService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	if m.deleteFn == nil {
		return models.DeleteResult{}, nil
	}
	return m.deleteFn(ctx, id)
}

type mockOrderService struct {
	placeFn func(ctx context.Context, order models.Document) (models.InsertResult, error)
}

func (m *mockOrderService) Place(ctx context.Context, order models.Document) (models.InsertResult, error) {
	if m.placeFn == nil {
		return models.InsertResult{}, nil
	}
	return m.placeFn(ctx, order)
}

type fakeServices struct {
	auth    *mockAuthService
	users   *mockUserService
	leads   *mockLeadService
	blogs   *mockBlogService
	comment *mockCommentService
	product *mockProductService
	orders  *mockOrderService
}

func newFakeServices() *fakeServices {
	return &fakeServices{
		auth:    &mockAuthService{},
		users:   &mockUserService{},
		leads:   &mockLeadService{},
		blogs:   &mockBlogService{},
		comment: &mockCommentService{},
		product: &mockProductService{},
		orders:  &mockOrderService{},
	}
}

func (f *fakeServices) services() *service.Services {
	return &service.Services{
		AuthService:    f.auth,
		UserService:    f.users,
		LeadService:    f.leads,
		BlogService:    f.blogs,
		CommentService: f.comment,
		ProductService: f.product,
		OrderService:   f.orders,
	}
}
