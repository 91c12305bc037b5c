package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"mintkitchen/api/internal/client"
	"mintkitchen/api/internal/domain"
)

type OrderService struct {
	client    client.SquareClient
	locations *LocationResolver
	currency  string
	newKey    KeyFunc
}

func NewOrderService(client client.SquareClient, locations *LocationResolver, currency string, newKey KeyFunc) *OrderService {
	if newKey == nil {
		newKey = NewIdempotencyKey
	}
	return &OrderService{
		client:    client,
		locations: locations,
		currency:  currency,
		newKey:    newKey,
	}
}

// CreateOrder books the cart as a single order. The cart is validated before
// anything is sent upstream.
func (s *OrderService) CreateOrder(ctx context.Context, in domain.CreateOrderInput) (*domain.OrderResult, error) {
	lineItems, err := AssembleLineItems(in.LineItems, s.currency)
	if err != nil {
		return nil, err
	}

	locationID, err := s.locations.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.client.CreateOrder(ctx, domain.CreateOrderRequest{
		IdempotencyKey: idempotencyKey(in.IdempotencyKey, s.newKey),
		Order: domain.OrderDraft{
			LocationID: locationID,
			LineItems:  lineItems,
		},
	})
	if err != nil {
		return nil, err
	}

	result := &domain.OrderResult{
		OrderID:    order.ID,
		LocationID: locationID,
	}
	if order.TotalMoney != nil {
		result.TotalMoney = *order.TotalMoney
	}
	return result, nil
}

// AssembleLineItems converts cart lines to the commerce API line item shape
func AssembleLineItems(cart []domain.CartItem, currency string) ([]domain.OrderLineItem, error) {
	if len(cart) == 0 {
		return nil, &ValidationError{Field: "line_items", Message: "at least one line item is required"}
	}

	lineItems := make([]domain.OrderLineItem, 0, len(cart))
	for i, item := range cart {
		field := fmt.Sprintf("line_items[%d]", i)

		if strings.TrimSpace(item.Name) == "" {
			return nil, &ValidationError{Field: field + ".name", Message: "name is required"}
		}
		if item.Quantity < 1 {
			return nil, &ValidationError{Field: field + ".quantity", Message: fmt.Sprintf("quantity must be positive, got %d", item.Quantity)}
		}

		amount, err := ParsePrice(item.Price)
		if err != nil {
			return nil, &ValidationError{Field: field + ".price", Message: err.Error()}
		}

		lineItem := domain.OrderLineItem{
			Name:     item.Name,
			Quantity: strconv.Itoa(item.Quantity),
			BasePriceMoney: domain.Money{
				Amount:   amount,
				Currency: currency,
			},
		}
		if item.ItemID != "" {
			lineItem.Metadata = map[string]string{"item_id": item.ItemID}
		}
		lineItems = append(lineItems, lineItem)
	}
	return lineItems, nil
}

// displayPrice is a dollar amount with at most two decimals, after "$" and
// thousands separators are removed
var displayPrice = regexp.MustCompile(`^(\d+)(?:\.(\d{1,2}))?$`)

// maxPriceDollars keeps the minor-unit amount within int64
const maxPriceDollars = (math.MaxInt64 - 99) / 100

// ParsePrice converts a display price such as "$1,214.50" to minor units
func ParsePrice(price string) (int64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(price))
	if cleaned == "" {
		return 0, fmt.Errorf("price %q is empty", price)
	}

	m := displayPrice.FindStringSubmatch(strings.TrimSpace(cleaned))
	if m == nil {
		return 0, fmt.Errorf("price %q is not a display price", price)
	}

	dollars, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || dollars > maxPriceDollars {
		return 0, fmt.Errorf("price %q is out of range", price)
	}

	var cents int64
	if m[2] != "" {
		frac := m[2]
		if len(frac) == 1 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}

	return dollars*100 + cents, nil
}
