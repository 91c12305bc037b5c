package client

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net"
	"net/http"
	"strings"
	"time"

	"mintkitchen/api/internal/config"
	"mintkitchen/api/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// BatchLimit is the maximum number of ids a single batch lookup accepts
const BatchLimit = 1000

// SquareClient is the commerce platform gateway: catalog, locations, orders
// and payments. Writes are keyed by an idempotency key supplied by the caller.
type SquareClient interface {
	ListCatalogPage(ctx context.Context, cursor string, types []domain.ObjectType) (*domain.CatalogPage, error)
	ListCatalog(ctx context.Context, types ...domain.ObjectType) iter.Seq2[*domain.CatalogObject, error]
	BatchGetObjects(ctx context.Context, ids []string, includeRelated bool) (*domain.BatchResult, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error)
}

type squareClient struct {
	rl         ratelimit.Limiter
	httpClient *resty.Client
	timeout    time.Duration
}

func NewSquareClient(cfg config.SquareConfig, creds config.Credentials) SquareClient {
	return newSquareClient(cfg, creds)
}

func newSquareClient(cfg config.SquareConfig, creds config.Credentials) *squareClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(creds.BaseURL, "/")).
		SetTimeout(cfg.TimeoutDuration()).
		SetAuthToken(creds.AccessToken).
		SetHeader("Square-Version", cfg.APIVersion).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "mintkitchen-api")

	if cfg.ProxyURL != "" {
		client.SetProxy(cfg.ProxyURL)
		log.Infof("🔗 Using outbound proxy: %s", cfg.ProxyURL)
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	timeout := cfg.TimeoutDuration()
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &squareClient{
		rl:         rl,
		httpClient: client,
		timeout:    timeout,
	}
}

func (c *squareClient) ListCatalogPage(ctx context.Context, cursor string, types []domain.ObjectType) (*domain.CatalogPage, error) {
	query := map[string]string{"cursor": cursor}
	if len(types) > 0 {
		names := make([]string, 0, len(types))
		for _, t := range types {
			names = append(names, t.String())
		}
		query["types"] = strings.Join(names, ",")
	}

	var result struct {
		squareResponse
		domain.CatalogPage
	}
	if err := c.do(ctx, http.MethodGet, "/v2/catalog/list", query, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	page := result.CatalogPage
	log.Debugf("Fetched catalog page with %d objects (more: %t)", len(page.Objects), page.Cursor != "")
	return &page, nil
}

func (c *squareClient) ListCatalog(ctx context.Context, types ...domain.ObjectType) iter.Seq2[*domain.CatalogObject, error] {
	return WalkCatalog(ctx, c.ListCatalogPage, types...)
}

// WalkCatalog follows catalog cursors lazily, yielding every object. The
// sequence ends after the first error.
func WalkCatalog(
	ctx context.Context,
	listPage func(ctx context.Context, cursor string, types []domain.ObjectType) (*domain.CatalogPage, error),
	types ...domain.ObjectType,
) iter.Seq2[*domain.CatalogObject, error] {
	return func(yield func(*domain.CatalogObject, error) bool) {
		cursor := ""
		for {
			page, err := listPage(ctx, cursor, types)
			if err != nil {
				yield(nil, err)
				return
			}

			for _, obj := range page.Objects {
				if obj == nil {
					continue
				}
				if !yield(obj, nil) {
					return
				}
			}

			if page.Cursor == "" || page.Cursor == cursor {
				return
			}
			cursor = page.Cursor
		}
	}
}

func (c *squareClient) BatchGetObjects(ctx context.Context, ids []string, includeRelated bool) (*domain.BatchResult, error) {
	if len(ids) == 0 {
		return &domain.BatchResult{}, nil
	}
	if len(ids) > BatchLimit {
		return nil, fmt.Errorf("batch lookup of %d ids exceeds limit of %d", len(ids), BatchLimit)
	}

	body := map[string]any{
		"object_ids":              ids,
		"include_related_objects": includeRelated,
	}

	var result struct {
		squareResponse
		domain.BatchResult
	}
	if err := c.do(ctx, http.MethodPost, "/v2/catalog/batch-retrieve", nil, body, &result); err != nil {
		return nil, fmt.Errorf("failed to batch retrieve %d objects: %w", len(ids), err)
	}

	batch := result.BatchResult
	return &batch, nil
}

func (c *squareClient) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var result struct {
		squareResponse
		Locations []domain.Location `json:"locations"`
	}
	if err := c.do(ctx, http.MethodGet, "/v2/locations", nil, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return result.Locations, nil
}

func (c *squareClient) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	var result struct {
		squareResponse
		Order *domain.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/orders", nil, req, &result); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if result.Order == nil {
		return nil, errors.New("failed to create order: response has no order")
	}

	log.Infof("✅ Created order %s at location %s", result.Order.ID, result.Order.LocationID)
	return result.Order, nil
}

func (c *squareClient) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error) {
	var result struct {
		squareResponse
		Payment *domain.Payment `json:"payment"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/payments", nil, req, &result); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	if result.Payment == nil {
		return nil, errors.New("failed to create payment: response has no payment")
	}

	log.Infof("✅ Created payment %s for order %s (%s)", result.Payment.ID, result.Payment.OrderID, result.Payment.Status)
	return result.Payment, nil
}

// do sends one request. Success bodies decode into out and error bodies into
// the shared envelope; errors reported inside a successful body are rejections too.
func (c *squareClient) do(ctx context.Context, method, path string, query map[string]string, body any, out errorCarrier) error {
	c.rl.Take()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var failure squareResponse
	req := c.httpClient.R().
		SetContext(reqCtx).
		SetResult(out).
		SetError(&failure).
		SetExpectResponseContentType("application/json")
	for k, v := range query {
		if v != "" {
			req.SetQueryParam(k, v)
		}
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) || isTimeout(err) {
			return fmt.Errorf("%w: %s %s", ErrTimeout, method, path)
		}
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}

	details := out.errorDetails()
	if resp.IsError() {
		details = failure.Errors
	}
	if resp.IsError() || len(details) > 0 {
		apiErr := &APIError{StatusCode: resp.StatusCode(), Errors: details}
		log.Warnf("🚫 %s %s failed: %v", method, path, apiErr)
		return apiErr
	}

	return nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
