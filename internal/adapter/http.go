package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-hair-salon/internal/config"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/internal/utils"
	"github.com/MKhiriev/go-hair-salon/models"
	"github.com/go-resty/resty/v2"
)

type httpSalonAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPSalonAdapter builds a resty backed [SalonAPI] for cfg.Address.
// The configured token, if any, is attached to guarded requests.
func NewHTTPSalonAdapter(cfg config.ClientConfig, logger *logger.Logger) (SalonAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid salon address: %w", err)
	}

	a := &httpSalonAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSalonAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpSalonAdapter) Token() string {
	return h.token
}

func (h *httpSalonAdapter) IssueToken(ctx context.Context, email string) (string, error) {
	var result models.AccessToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&result).
		Get("/jwt")
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.AccessToken)
	h.logger.Debug().Str("email", email).Msg("access token received")

	return result.AccessToken, nil
}

func (h *httpSalonAdapter) IsAdmin(ctx context.Context, email string) (bool, error) {
	var status models.AdminStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("email", email).
		SetResult(&status).
		Get("/users/admin/{email}")
	if err != nil {
		return false, fmt.Errorf("admin status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return status.IsAdmin, nil
}

func (h *httpSalonAdapter) Promote(ctx context.Context, id string) (models.UpdateResult, error) {
	var result models.UpdateResult

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Put("/users/admin/{id}")
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("promote request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateResult{}, err
	}

	return result, nil
}

func (h *httpSalonAdapter) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	return h.delete(ctx, "/users/{id}", id)
}

func (h *httpSalonAdapter) Blogs(ctx context.Context) ([]models.Document, error) {
	return h.list(h.client.R().SetContext(ctx), "/blogs")
}

func (h *httpSalonAdapter) DeleteBlog(ctx context.Context, id string) (models.DeleteResult, error) {
	return h.delete(ctx, "/blogs/{id}", id)
}

func (h *httpSalonAdapter) MyComments(ctx context.Context, email string) ([]models.Document, error) {
	return h.list(h.authedRequest(ctx).SetQueryParam("email", email), "/mycomments")
}

func (h *httpSalonAdapter) DeleteComment(ctx context.Context, id string) (models.DeleteResult, error) {
	return h.delete(ctx, "/mycomments/{id}", id)
}

func (h *httpSalonAdapter) DeleteProduct(ctx context.Context, id string) (models.DeleteResult, error) {
	return h.delete(ctx, "/product/{id}", id)
}

func (h *httpSalonAdapter) list(req *resty.Request, path string) ([]models.Document, error) {
	docs := []models.Document{}

	resp, err := req.SetResult(&docs).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return docs, nil
}

func (h *httpSalonAdapter) delete(ctx context.Context, pattern, id string) (models.DeleteResult, error) {
	var result models.DeleteResult

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Delete(pattern)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteResult{}, err
	}

	return result, nil
}

func (h *httpSalonAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
