package service

import (
	"context"
	"fmt"

	"mintkitchen/api/internal/client"
)

// LocationResolver picks the location orders and payments are booked at:
// the configured one, otherwise the first location the account lists.
type LocationResolver struct {
	client  client.SquareClient
	fixedID string
}

func NewLocationResolver(client client.SquareClient, fixedID string) *LocationResolver {
	return &LocationResolver{
		client:  client,
		fixedID: fixedID,
	}
}

func (r *LocationResolver) Resolve(ctx context.Context) (string, error) {
	if r.fixedID != "" {
		return r.fixedID, nil
	}

	locations, err := r.client.ListLocations(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve location: %w", err)
	}
	if len(locations) == 0 || locations[0].ID == "" {
		return "", ErrNoLocation
	}
	return locations[0].ID, nil
}
