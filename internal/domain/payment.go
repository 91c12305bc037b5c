package domain

type CreatePaymentInput struct {
	SourceID       string `json:"source_id" binding:"required"` // token from the web payments SDK
	OrderID        string `json:"order_id" binding:"required"`
	AmountMoney    int64  `json:"amount_money" binding:"required,gt=0"` // minor units
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type CreatePaymentRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	SourceID       string `json:"source_id"`
	AmountMoney    Money  `json:"amount_money"`
	LocationID     string `json:"location_id"`
	OrderID        string `json:"order_id"`
}

type Payment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	ReceiptURL  string `json:"receipt_url,omitempty"`
	OrderID     string `json:"order_id,omitempty"`
	AmountMoney *Money `json:"amount_money,omitempty"`
}

type PaymentResult struct {
	PaymentID  string `json:"payment_id"`
	Status     string `json:"status"`
	ReceiptURL string `json:"receipt_url"`
	OrderID    string `json:"order_id"`
}
