package service

import (
	"strings"

	"mintkitchen/api/internal/domain"

	log "github.com/sirupsen/logrus"
)

const (
	defaultItemName     = "Unknown Item"
	defaultCategoryName = "Unknown Category"
)

// CategoryIndex maps category id to lower-cased category name. It is built
// from a complete catalog scan and never reused across requests.
type CategoryIndex map[string]string

func BuildCategoryIndex(objects []*domain.CatalogObject) CategoryIndex {
	index := make(CategoryIndex)
	for _, obj := range objects {
		if obj.Kind() != domain.KindCategory || obj.CategoryData.Name == nil {
			continue
		}
		name := strings.ToLower(*obj.CategoryData.Name)
		index[obj.ID] = name
		log.Debugf("Found category: %s -> %s", obj.ID, name)
	}
	return index
}

// ImageIndex maps image id to image URL
type ImageIndex map[string]string

func BuildImageIndex(objects []*domain.CatalogObject) ImageIndex {
	index := make(ImageIndex)
	for _, obj := range objects {
		if obj.Kind() == domain.KindImage && obj.ImageData.URL != "" {
			index[obj.ID] = obj.ImageData.URL
		}
	}
	return index
}

// ProjectItem reshapes an ITEM object. It reports false for any other type.
// Every optional attribute falls back to a default; it never fails.
func ProjectItem(obj *domain.CatalogObject, categories CategoryIndex, images ImageIndex) (domain.MenuItem, bool) {
	if obj == nil || obj.Type != domain.ObjectTypeItem {
		return domain.MenuItem{}, false
	}

	data := obj.ItemData
	if data == nil {
		data = &domain.ItemData{}
	}

	item := domain.MenuItem{
		ID:          obj.ID,
		Name:        defaultItemName,
		Description: "",
		Price:       domain.Money{}.Display(),
	}

	if data.Name != nil && *data.Name != "" {
		item.Name = *data.Name
	}
	if data.Description != nil {
		item.Description = *data.Description
	}

	// only the first variation is priced
	if price, ok := data.FirstPrice(); ok {
		item.Price = price.Display()
	}

	if imageID, ok := data.FirstImageID(); ok {
		if url, found := images[imageID]; found {
			item.Image = &url
		}
	}

	if categoryID, ok := data.FirstCategoryID(); ok {
		item.Category = categories[categoryID]
	}

	return item, true
}

// Project reshapes every ITEM object of a complete scan, in scan order
func Project(objects []*domain.CatalogObject, categories CategoryIndex, images ImageIndex) []domain.MenuItem {
	items := make([]domain.MenuItem, 0, len(objects))
	for _, obj := range objects {
		if item, ok := ProjectItem(obj, categories, images); ok {
			items = append(items, item)
		}
	}
	return items
}

// BuildMenu buckets projected items
func BuildMenu(items []domain.MenuItem) *domain.Menu {
	menu := domain.NewMenu()
	for _, item := range items {
		menu.Add(Categorize(item), item)
	}
	return menu
}

// missingImageIDs lists the distinct first-image ids not already resolved
func missingImageIDs(objects []*domain.CatalogObject, images ImageIndex) []string {
	seen := make(map[string]struct{})
	var missing []string
	for _, obj := range objects {
		if obj.Kind() != domain.KindItem {
			continue
		}
		id, ok := obj.ItemData.FirstImageID()
		if !ok {
			continue
		}
		if _, resolved := images[id]; resolved {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}
	return missing
}
