package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withCORS())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.liveness)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/jwt", h.issueToken)

		r.Post("/users", h.createUser)
		r.Get("/users", h.listUsers)
		r.Get("/users/admins", h.listAdmins)
		r.Get("/users/admin/{email}", h.adminStatus)

		r.Post("/interestedCustomer", h.createLead)

		r.Post("/blogs", h.createBlog)
		r.Get("/blogs", h.listBlogs)
		r.Get("/blogs/{id}", h.findBlog)

		r.Post("/comments", h.createComment)
		r.Get("/comments", h.listComments)

		r.Get("/products", h.listProducts)
		r.Delete("/product/{id}", h.deleteProduct)

		r.Post("/orderPlace", h.placeOrder)
	})

	// routes for any authenticated caller
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/mycomments", h.myComments)
		r.Delete("/mycomments/{id}", h.deleteComment)
	})

	// routes for admins
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Put("/users/admin/{id}", h.makeAdmin)
		r.Delete("/users/{id}", h.deleteUser)
		r.Delete("/blogs/{id}", h.deleteBlog)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
