package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mintkitchen/api/internal/domain"
)

func counterKeys() KeyFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("key-%d", n)
	}
}

func TestCreateOrder(t *testing.T) {
	mock := &mockSquareClient{
		CreateOrderFunc: func(_ context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
			return &domain.Order{ID: "ORDER1", TotalMoney: &domain.Money{Amount: 2800, Currency: "USD"}}, nil
		},
	}
	svc := NewOrderService(mock, NewLocationResolver(mock, ""), "USD", counterKeys())

	result, err := svc.CreateOrder(context.Background(), domain.CreateOrderInput{
		LineItems: []domain.CartItem{{ItemID: "ITEM1", Name: "Masala Dosa", Quantity: 2, Price: "$14.00"}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	want := domain.OrderResult{OrderID: "ORDER1", TotalMoney: domain.Money{Amount: 2800, Currency: "USD"}, LocationID: "LOC1"}
	if *result != want {
		t.Errorf("result = %+v, want %+v", *result, want)
	}

	if len(mock.orderCalls) != 1 {
		t.Fatalf("expected 1 order call, got %d", len(mock.orderCalls))
	}
	req := mock.orderCalls[0]
	if req.IdempotencyKey != "key-1" || req.Order.LocationID != "LOC1" {
		t.Errorf("unexpected request: %+v", req)
	}
	li := req.Order.LineItems[0]
	if li.Name != "Masala Dosa" || li.Quantity != "2" || li.BasePriceMoney != (domain.Money{Amount: 1400, Currency: "USD"}) {
		t.Errorf("unexpected line item: %+v", li)
	}
	if li.Metadata["item_id"] != "ITEM1" {
		t.Errorf("line item should carry the catalog item id: %+v", li.Metadata)
	}
}

func TestCreateOrderInvalidPriceMakesNoCalls(t *testing.T) {
	mock := &mockSquareClient{}
	svc := NewOrderService(mock, NewLocationResolver(mock, ""), "USD", nil)

	_, err := svc.CreateOrder(context.Background(), domain.CreateOrderInput{
		LineItems: []domain.CartItem{
			{ItemID: "ITEM1", Name: "Masala Dosa", Quantity: 1, Price: "$14.00"},
			{ItemID: "ITEM2", Name: "Mystery", Quantity: 1, Price: "abc"},
		},
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "line_items[1].price" {
		t.Errorf("field = %q", verr.Field)
	}
	if mock.locationCalls != 0 || len(mock.orderCalls) != 0 {
		t.Errorf("no gateway calls expected, got %d location and %d order calls", mock.locationCalls, len(mock.orderCalls))
	}
}

func TestCreateOrderIdempotencyKeys(t *testing.T) {
	mock := &mockSquareClient{}
	svc := NewOrderService(mock, NewLocationResolver(mock, ""), "USD", nil)
	in := domain.CreateOrderInput{
		LineItems: []domain.CartItem{{ItemID: "ITEM1", Name: "Masala Dosa", Quantity: 1, Price: "12.50"}},
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.CreateOrder(context.Background(), in); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}
	first, second := mock.orderCalls[0].IdempotencyKey, mock.orderCalls[1].IdempotencyKey
	if first == "" || first == second {
		t.Errorf("expected distinct generated keys, got %q and %q", first, second)
	}

	in.IdempotencyKey = "retry-abc"
	if _, err := svc.CreateOrder(context.Background(), in); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if got := mock.orderCalls[2].IdempotencyKey; got != "retry-abc" {
		t.Errorf("supplied key not passed through: %q", got)
	}
}

func TestCreateOrderLocation(t *testing.T) {
	t.Run("no locations", func(t *testing.T) {
		mock := &mockSquareClient{
			ListLocationsFunc: func(context.Context) ([]domain.Location, error) { return nil, nil },
		}
		svc := NewOrderService(mock, NewLocationResolver(mock, ""), "USD", nil)

		_, err := svc.CreateOrder(context.Background(), domain.CreateOrderInput{
			LineItems: []domain.CartItem{{ItemID: "I", Name: "A", Quantity: 1, Price: "$1.00"}},
		})
		if !errors.Is(err, ErrNoLocation) {
			t.Fatalf("expected ErrNoLocation, got %v", err)
		}
		if len(mock.orderCalls) != 0 {
			t.Error("order must not be sent without a location")
		}
	})

	t.Run("fixed location", func(t *testing.T) {
		mock := &mockSquareClient{}
		svc := NewOrderService(mock, NewLocationResolver(mock, "LOC-FIXED"), "USD", nil)

		result, err := svc.CreateOrder(context.Background(), domain.CreateOrderInput{
			LineItems: []domain.CartItem{{ItemID: "I", Name: "A", Quantity: 1, Price: "$1.00"}},
		})
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		if mock.locationCalls != 0 {
			t.Error("configured location should skip listing")
		}
		if result.LocationID != "LOC-FIXED" || mock.orderCalls[0].Order.LocationID != "LOC-FIXED" {
			t.Errorf("unexpected location: %+v", result)
		}
	})

	t.Run("listing fails", func(t *testing.T) {
		upstream := errors.New("upstream unavailable")
		mock := &mockSquareClient{
			ListLocationsFunc: func(context.Context) ([]domain.Location, error) { return nil, upstream },
		}
		svc := NewOrderService(mock, NewLocationResolver(mock, ""), "USD", nil)

		_, err := svc.CreateOrder(context.Background(), domain.CreateOrderInput{
			LineItems: []domain.CartItem{{ItemID: "I", Name: "A", Quantity: 1, Price: "$1.00"}},
		})
		if !errors.Is(err, upstream) {
			t.Fatalf("expected wrapped upstream error, got %v", err)
		}
	})
}

func TestAssembleLineItemsValidation(t *testing.T) {
	tests := []struct {
		name  string
		cart  []domain.CartItem
		field string
	}{
		{"empty cart", nil, "line_items"},
		{"missing name", []domain.CartItem{{Name: " ", Quantity: 1, Price: "$1"}}, "line_items[0].name"},
		{"zero quantity", []domain.CartItem{{Name: "A", Quantity: 0, Price: "$1"}}, "line_items[0].quantity"},
		{"negative price", []domain.CartItem{{Name: "A", Quantity: 1, Price: "-1.00"}}, "line_items[0].price"},
		{"empty price", []domain.CartItem{{Name: "A", Quantity: 1, Price: ""}}, "line_items[0].price"},
		{"huge price", []domain.CartItem{{Name: "A", Quantity: 1, Price: "$99999999999999999999"}}, "line_items[0].price"},
		{"exponent price", []domain.CartItem{{Name: "A", Quantity: 1, Price: "$1e20"}}, "line_items[0].price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AssembleLineItems(tt.cart, "USD")
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Errorf("expected ValidationError on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"$14.00", 1400, false},
		{"14.99", 1499, false},
		{"$0.29", 29, false},
		{"$1,214.50", 121450, false},
		{"  $3 ", 300, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"$", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-2", 0, true},
		{"12.5", 1250, false},
		{"$92233720368547757.99", 92233720368547757*100 + 99, false},
		{"$92233720368547758", 0, true},
		{"$1e20", 0, true},
		{"$99999999999999999999", 0, true},
		{"1e3", 0, true},
		{"0x10", 0, true},
		{"12.345", 0, true},
		{".5", 0, true},
		{"1 000", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePrice(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePrice(%q) err = %v, wantErr %t", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePrice(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
