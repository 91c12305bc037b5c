package service

import (
	"context"
	"iter"

	"mintkitchen/api/internal/client"
	"mintkitchen/api/internal/domain"
)

// mockSquareClient implements client.SquareClient with overridable functions
type mockSquareClient struct {
	ListCatalogPageFunc func(ctx context.Context, cursor string, types []domain.ObjectType) (*domain.CatalogPage, error)
	BatchGetObjectsFunc func(ctx context.Context, ids []string, includeRelated bool) (*domain.BatchResult, error)
	ListLocationsFunc   func(ctx context.Context) ([]domain.Location, error)
	CreateOrderFunc     func(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	CreatePaymentFunc   func(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error)

	batchCalls    [][]string
	locationCalls int
	orderCalls    []domain.CreateOrderRequest
	paymentCalls  []domain.CreatePaymentRequest
}

var _ client.SquareClient = (*mockSquareClient)(nil)

func (m *mockSquareClient) ListCatalogPage(ctx context.Context, cursor string, types []domain.ObjectType) (*domain.CatalogPage, error) {
	if m.ListCatalogPageFunc != nil {
		return m.ListCatalogPageFunc(ctx, cursor, types)
	}
	return &domain.CatalogPage{}, nil
}

func (m *mockSquareClient) ListCatalog(ctx context.Context, types ...domain.ObjectType) iter.Seq2[*domain.CatalogObject, error] {
	return client.WalkCatalog(ctx, m.ListCatalogPage, types...)
}

func (m *mockSquareClient) BatchGetObjects(ctx context.Context, ids []string, includeRelated bool) (*domain.BatchResult, error) {
	m.batchCalls = append(m.batchCalls, ids)
	if m.BatchGetObjectsFunc != nil {
		return m.BatchGetObjectsFunc(ctx, ids, includeRelated)
	}
	return &domain.BatchResult{}, nil
}

func (m *mockSquareClient) ListLocations(ctx context.Context) ([]domain.Location, error) {
	m.locationCalls++
	if m.ListLocationsFunc != nil {
		return m.ListLocationsFunc(ctx)
	}
	return []domain.Location{{ID: "LOC1"}}, nil
}

func (m *mockSquareClient) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	m.orderCalls = append(m.orderCalls, req)
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, req)
	}
	return &domain.Order{ID: "ORDER1", LocationID: req.Order.LocationID}, nil
}

func (m *mockSquareClient) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error) {
	m.paymentCalls = append(m.paymentCalls, req)
	if m.CreatePaymentFunc != nil {
		return m.CreatePaymentFunc(ctx, req)
	}
	return &domain.Payment{ID: "PAY1", Status: "COMPLETED", OrderID: req.OrderID}, nil
}

// pages serves the given pages in order, chained by cursor
func pages(pp ...[]*domain.CatalogObject) func(ctx context.Context, cursor string, types []domain.ObjectType) (*domain.CatalogPage, error) {
	return func(_ context.Context, cursor string, _ []domain.ObjectType) (*domain.CatalogPage, error) {
		i := 0
		if cursor != "" {
			for n := range pp {
				if cursor == pageCursor(n) {
					i = n
				}
			}
		}
		page := &domain.CatalogPage{Objects: pp[i]}
		if i+1 < len(pp) {
			page.Cursor = pageCursor(i + 1)
		}
		return page, nil
	}
}

func pageCursor(n int) string {
	return "page-" + string(rune('0'+n))
}

func strPtr(s string) *string { return &s }

func item(id, name string, opts ...func(*domain.ItemData)) *domain.CatalogObject {
	data := &domain.ItemData{Name: strPtr(name)}
	for _, opt := range opts {
		opt(data)
	}
	return &domain.CatalogObject{Type: domain.ObjectTypeItem, ID: id, ItemData: data}
}

func withCategory(id string) func(*domain.ItemData) {
	return func(d *domain.ItemData) { d.Categories = []domain.CategoryRef{{ID: id}} }
}

func withPrice(amount int64) func(*domain.ItemData) {
	return func(d *domain.ItemData) {
		d.Variations = append(d.Variations, &domain.CatalogObject{
			Type:              domain.ObjectTypeItemVariation,
			ItemVariationData: &domain.ItemVariationData{PriceMoney: &domain.Money{Amount: amount, Currency: "USD"}},
		})
	}
}

func withImage(id string) func(*domain.ItemData) {
	return func(d *domain.ItemData) { d.ImageIDs = append(d.ImageIDs, id) }
}

func category(id, name string) *domain.CatalogObject {
	return &domain.CatalogObject{Type: domain.ObjectTypeCategory, ID: id, CategoryData: &domain.CategoryData{Name: strPtr(name)}}
}

func image(id, url string) *domain.CatalogObject {
	return &domain.CatalogObject{Type: domain.ObjectTypeImage, ID: id, ImageData: &domain.ImageData{URL: url}}
}
