package service

import (
	"context"
	"strings"

	"mintkitchen/api/internal/client"
	"mintkitchen/api/internal/domain"
)

type PaymentService struct {
	client    client.SquareClient
	locations *LocationResolver
	currency  string
	newKey    KeyFunc
}

func NewPaymentService(client client.SquareClient, locations *LocationResolver, currency string, newKey KeyFunc) *PaymentService {
	if newKey == nil {
		newKey = NewIdempotencyKey
	}
	return &PaymentService{
		client:    client,
		locations: locations,
		currency:  currency,
		newKey:    newKey,
	}
}

// CreatePayment charges the payment source for an existing order. The amount
// is already in minor units.
func (s *PaymentService) CreatePayment(ctx context.Context, in domain.CreatePaymentInput) (*domain.PaymentResult, error) {
	if strings.TrimSpace(in.SourceID) == "" {
		return nil, &ValidationError{Field: "source_id", Message: "source_id is required"}
	}
	if strings.TrimSpace(in.OrderID) == "" {
		return nil, &ValidationError{Field: "order_id", Message: "order_id is required"}
	}
	if in.AmountMoney <= 0 {
		return nil, &ValidationError{Field: "amount_money", Message: "amount_money must be positive"}
	}

	locationID, err := s.locations.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	payment, err := s.client.CreatePayment(ctx, domain.CreatePaymentRequest{
		IdempotencyKey: idempotencyKey(in.IdempotencyKey, s.newKey),
		SourceID:       in.SourceID,
		AmountMoney: domain.Money{
			Amount:   in.AmountMoney,
			Currency: s.currency,
		},
		LocationID: locationID,
		OrderID:    in.OrderID,
	})
	if err != nil {
		return nil, err
	}

	return &domain.PaymentResult{
		PaymentID:  payment.ID,
		Status:     payment.Status,
		ReceiptURL: payment.ReceiptURL,
		OrderID:    payment.OrderID,
	}, nil
}
