package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-hair-salon/internal/config"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/service"
	"github.com/MKhiriev/go-hair-salon/internal/store"
	"github.com/MKhiriev/go-hair-salon/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc,
		config.Server{RequestTimeout: 3 * time.Second},
		config.CORS{AllowedOrigins: []string{"https://salon.example"}},
		log,
	)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
	assert.Equal(t, []string{"https://salon.example"}, h.allowedOrigins)
}

// newTestServer wires the full router over fake services.
func newTestServer(t *testing.T, fakes *fakeServices) *httptest.Server {
	t.Helper()

	h := NewHandler(fakes.services(), config.Server{}, config.CORS{AllowedOrigins: []string{"*"}}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, body string, header map[string]string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestLiveness(t *testing.T) {
	srv := newTestServer(t, newFakeServices())

	status, body := doRequest(t, srv, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hair Saloon server is running", body)
}

func TestIssueToken(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		issueFn    func(context.Context, string) (models.Token, error)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "known account gets token",
			query: "?email=a@x.com",
			issueFn: func(_ context.Context, email string) (models.Token, error) {
				return models.Token{SignedString: "signed-for-" + email, Email: email}, nil
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"accessToken":"signed-for-a@x.com"}`,
		},
		{
			name:  "unknown account gets empty token",
			query: "?email=ghost@x.com",
			issueFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, service.ErrAccountNotFound
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"accessToken":""}`,
		},
		{
			name:  "missing email gets empty token",
			query: "",
			issueFn: func(_ context.Context, email string) (models.Token, error) {
				if email == "" {
					return models.Token{}, service.ErrAccountNotFound
				}
				return models.Token{SignedString: "x"}, nil
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"accessToken":""}`,
		},
		{
			name:  "lookup failure is a server error",
			query: "?email=a@x.com",
			issueFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, errors.New("server selection timeout")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakes := newFakeServices()
			fakes.auth.issueTokenFn = tt.issueFn
			srv := newTestServer(t, fakes)

			status, body := doRequest(t, srv, http.MethodGet, "/jwt"+tt.query, "", nil)

			assert.Equal(t, tt.wantStatus, status)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, body)
			}
		})
	}
}

func TestAdminStatus(t *testing.T) {
	fakes := newFakeServices()
	fakes.auth.isAdminFn = adminsOf("boss@x.com")
	srv := newTestServer(t, fakes)

	status, body := doRequest(t, srv, http.MethodGet, "/users/admin/boss@x.com", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"isAdmin":true}`, body)

	status, body = doRequest(t, srv, http.MethodGet, "/users/admin/a@x.com", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"isAdmin":false}`, body)
}

func TestCreateUser(t *testing.T) {
	var stored models.Document
	fakes := newFakeServices()
	fakes.users.createFn = func(_ context.Context, doc models.Document) (models.InsertResult, error) {
		stored = doc
		return models.InsertResult{Acknowledged: true, InsertedID: "65f0c0ffee0000000000abcd"}, nil
	}
	srv := newTestServer(t, fakes)

	status, body := doRequest(t, srv, http.MethodPost, "/users", `{"email":"a@x.com","name":"A"}`, nil)

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"65f0c0ffee0000000000abcd"}`, body)
	assert.Equal(t, "a@x.com", stored["email"])
	assert.Equal(t, "A", stored["name"])
}

func TestCreateEndpoints_RejectBadBodies(t *testing.T) {
	paths := []string{"/users", "/interestedCustomer", "/blogs", "/comments", "/orderPlace"}
	bodies := map[string]string{
		"malformed": `{"email":`,
		"array":     `[1,2]`,
		"scalar":    `"text"`,
		"empty":     ``,
	}

	srv := newTestServer(t, newFakeServices())

	for _, path := range paths {
		for name, body := range bodies {
			t.Run(path+" "+name, func(t *testing.T) {
				status, _ := doRequest(t, srv, http.MethodPost, path, body, nil)
				assert.Equal(t, http.StatusBadRequest, status)
			})
		}
	}
}

func TestListEndpoints(t *testing.T) {
	docs := []models.Document{{"name": "one"}, {"name": "two"}}
	list := func(context.Context) ([]models.Document, error) { return docs, nil }

	fakes := newFakeServices()
	fakes.users.listFn = list
	fakes.users.listAdminsFn = list
	fakes.blogs.listFn = list
	fakes.comment.listFn = list
	fakes.product.listFn = list
	srv := newTestServer(t, fakes)

	for _, path := range []string{"/users", "/users/admins", "/blogs", "/comments", "/products"} {
		t.Run(path, func(t *testing.T) {
			status, body := doRequest(t, srv, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusOK, status)
			assert.JSONEq(t, `[{"name":"one"},{"name":"two"}]`, body)
		})
	}
}

func TestListEndpoints_EmptyIsArray(t *testing.T) {
	srv := newTestServer(t, newFakeServices())

	status, body := doRequest(t, srv, http.MethodGet, "/blogs", "", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)
}

func TestListEndpoints_StoreFailure(t *testing.T) {
	fakes := newFakeServices()
	fakes.product.listFn = func(context.Context) ([]models.Document, error) {
		return nil, store.ErrFindingDocuments
	}
	srv := newTestServer(t, fakes)

	status, body := doRequest(t, srv, http.MethodGet, "/products", "", nil)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "Internal Server Error")
}

func TestFindBlog(t *testing.T) {
	fakes := newFakeServices()
	fakes.blogs.findFn = func(_ context.Context, id string) ([]models.Document, error) {
		switch id {
		case "65f0c0ffee0000000000abcd":
			return []models.Document{{"title": "Summer cuts"}}, nil
		case "nothex":
			return nil, store.ErrInvalidID
		default:
			return []models.Document{}, nil
		}
	}
	srv := newTestServer(t, fakes)

	status, body := doRequest(t, srv, http.MethodGet, "/blogs/65f0c0ffee0000000000abcd", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"title":"Summer cuts"}]`, body)

	status, body = doRequest(t, srv, http.MethodGet, "/blogs/65f0c0ffee0000000000ffff", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)

	status, _ = doRequest(t, srv, http.MethodGet, "/blogs/nothex", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreateLeadAndOrder(t *testing.T) {
	var lead, order models.Document
	fakes := newFakeServices()
	fakes.leads.createFn = func(_ context.Context, doc models.Document) (models.InsertResult, error) {
		lead = doc
		return models.InsertResult{Acknowledged: true, InsertedID: "lead-1"}, nil
	}
	fakes.orders.placeFn = func(_ context.Context, doc models.Document) (models.InsertResult, error) {
		order = doc
		return models.InsertResult{Acknowledged: true, InsertedID: "order-1"}, nil
	}
	srv := newTestServer(t, fakes)

	status, body := doRequest(t, srv, http.MethodPost, "/interestedCustomer", `{"phone":"555"}`, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"lead-1"}`, body)
	assert.Equal(t, "555", lead["phone"])

	status, body = doRequest(t, srv, http.MethodPost, "/orderPlace", `{"items":["shampoo"],"total":12.5}`, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"order-1"}`, body)
	assert.Equal(t, 12.5, order["total"])
}

func TestDeleteProduct_IsPublic(t *testing.T) {
	var deleted string
	fakes := newFakeServices()
	fakes.product.deleteFn = func(_ context.Context, id string) (models.DeleteResult, error) {
		deleted = id
		return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
	}
	srv := newTestServer(t, fakes)

	status, body := doRequest(t, srv, http.MethodDelete, "/product/65f0c0ffee0000000000abcd", "", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, body)
	assert.Equal(t, "65f0c0ffee0000000000abcd", deleted)
}
