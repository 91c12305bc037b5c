package domain

// CartItem is a line of the storefront cart. Price is the display string the
// storefront showed the customer, e.g. "$14.00".
type CartItem struct {
	ItemID   string `json:"item_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Price    string `json:"price" binding:"required"`
}

type CreateOrderInput struct {
	LineItems      []CartItem `json:"line_items" binding:"required,min=1,dive"`
	IdempotencyKey string     `json:"idempotency_key,omitempty"`
}

// OrderLineItem is the commerce API line item shape
type OrderLineItem struct {
	Name           string            `json:"name"`
	Quantity       string            `json:"quantity"`
	BasePriceMoney Money             `json:"base_price_money"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type OrderDraft struct {
	LocationID string          `json:"location_id"`
	LineItems  []OrderLineItem `json:"line_items"`
}

type CreateOrderRequest struct {
	IdempotencyKey string     `json:"idempotency_key"`
	Order          OrderDraft `json:"order"`
}

type Order struct {
	ID         string          `json:"id"`
	LocationID string          `json:"location_id"`
	State      string          `json:"state,omitempty"`
	LineItems  []OrderLineItem `json:"line_items,omitempty"`
	TotalMoney *Money          `json:"total_money,omitempty"`
}

type OrderResult struct {
	OrderID    string `json:"order_id"`
	TotalMoney Money  `json:"total_money"`
	LocationID string `json:"location_id"`
}
