package service

import (
	"github.com/MKhiriev/go-hair-salon/internal/config"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	LeadService    LeadService
	BlogService    BlogService
	CommentService CommentService
	ProductService ProductService
	OrderService   OrderService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		LeadService:    newDocumentService(storages.LeadRepository, logger),
		BlogService:    newDocumentService(storages.BlogRepository, logger),
		CommentService: NewCommentService(storages.CommentRepository, logger),
		ProductService: newDocumentService(storages.ProductRepository, logger),
		OrderService:   NewOrderService(storages.OrderRepository, logger),
	}
}
