package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mintkitchen/api/internal/client"
	"mintkitchen/api/internal/domain"

	log "github.com/sirupsen/logrus"
)

type CatalogService struct {
	client client.SquareClient
}

func NewCatalogService(client client.SquareClient) *CatalogService {
	return &CatalogService{
		client: client,
	}
}

// Menu scans the whole catalog and returns every item bucketed. A failed scan
// fails the whole call; a failed image lookup only drops the image.
func (s *CatalogService) Menu(ctx context.Context) (*domain.Menu, error) {
	objects, err := s.scan(ctx, domain.MenuObjectTypes...)
	if err != nil {
		return nil, err
	}

	categories := BuildCategoryIndex(objects)
	images := BuildImageIndex(objects)
	s.resolveImages(ctx, missingImageIDs(objects, images), images)

	menu := BuildMenu(Project(objects, categories, images))

	log.Infof("Built menu with %d items from %d catalog objects (%d categories)",
		menu.Len(), len(objects), len(categories))
	return menu, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0)
	for obj, err := range s.client.ListCatalog(ctx, domain.ObjectTypeCategory) {
		if err != nil {
			return nil, fmt.Errorf("failed to scan categories: %w", err)
		}
		if obj.Kind() != domain.KindCategory {
			continue
		}

		name := defaultCategoryName
		if obj.CategoryData.Name != nil {
			name = *obj.CategoryData.Name
		}
		categories = append(categories, domain.Category{ID: obj.ID, Name: name})
	}
	return categories, nil
}

// Item returns the catalog object exactly as the commerce API reports it
func (s *CatalogService) Item(ctx context.Context, id string) (json.RawMessage, error) {
	result, err := s.client.BatchGetObjects(ctx, []string{id}, true)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if len(result.Objects) == 0 || result.Objects[0] == nil {
		return nil, ErrItemNotFound
	}

	raw, err := result.Objects[0].Raw()
	if err != nil {
		return nil, fmt.Errorf("failed to encode item %s: %w", id, err)
	}
	return raw, nil
}

func (s *CatalogService) scan(ctx context.Context, types ...domain.ObjectType) ([]*domain.CatalogObject, error) {
	var objects []*domain.CatalogObject
	for obj, err := range s.client.ListCatalog(ctx, types...) {
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog: %w", err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// resolveImages looks up image ids the scan did not include, in batches.
// Failures are logged and leave those items without an image.
func (s *CatalogService) resolveImages(ctx context.Context, ids []string, images ImageIndex) {
	for start := 0; start < len(ids); start += client.BatchLimit {
		end := min(start+client.BatchLimit, len(ids))
		batch := ids[start:end]

		result, err := s.client.BatchGetObjects(ctx, batch, false)
		if err != nil {
			log.Warnf("Failed to fetch %d images: %v", len(batch), err)
			continue
		}

		for _, obj := range result.Objects {
			if obj != nil && obj.Kind() == domain.KindImage && obj.ImageData.URL != "" {
				images[obj.ID] = obj.ImageData.URL
			}
		}
	}
}
