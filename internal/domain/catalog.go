package domain

import "encoding/json"

// CatalogObject is a single record of the commerce catalog. Type is the
// discriminant; at most the payload matching Type is expected to be set.
type CatalogObject struct {
	Type              ObjectType         `json:"type"`
	ID                string             `json:"id"`
	Version           int64              `json:"version,omitempty"`
	IsDeleted         bool               `json:"is_deleted,omitempty"`
	ItemData          *ItemData          `json:"item_data,omitempty"`
	ItemVariationData *ItemVariationData `json:"item_variation_data,omitempty"`
	CategoryData      *CategoryData      `json:"category_data,omitempty"`
	ImageData         *ImageData         `json:"image_data,omitempty"`

	raw json.RawMessage
}

type ItemData struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	CategoryID  string           `json:"category_id,omitempty"` // legacy single category
	Categories  []CategoryRef    `json:"categories,omitempty"`
	Variations  []*CatalogObject `json:"variations,omitempty"`
	ImageIDs    []string         `json:"image_ids,omitempty"`
}

type CategoryRef struct {
	ID      string `json:"id"`
	Ordinal int64  `json:"ordinal,omitempty"`
}

type ItemVariationData struct {
	ItemID     string `json:"item_id,omitempty"`
	Name       string `json:"name,omitempty"`
	PriceMoney *Money `json:"price_money,omitempty"`
}

type CategoryData struct {
	Name *string `json:"name,omitempty"`
}

type ImageData struct {
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// CatalogPage is one cursor page of a catalog listing
type CatalogPage struct {
	Objects []*CatalogObject `json:"objects"`
	Cursor  string           `json:"cursor,omitempty"` // empty on the last page
}

// BatchResult is the outcome of a batch object lookup
type BatchResult struct {
	Objects        []*CatalogObject `json:"objects"`
	RelatedObjects []*CatalogObject `json:"related_objects,omitempty"`
}

// Kind reports which variant the object carries. An object whose payload does
// not match its discriminant is KindOther.
func (o *CatalogObject) Kind() Kind {
	switch {
	case o.Type == ObjectTypeItem && o.ItemData != nil:
		return KindItem
	case o.Type == ObjectTypeCategory && o.CategoryData != nil:
		return KindCategory
	case o.Type == ObjectTypeImage && o.ImageData != nil:
		return KindImage
	default:
		return KindOther
	}
}

// Raw returns the payload exactly as received from the catalog, or the
// re-encoded object when it was built locally.
func (o *CatalogObject) Raw() (json.RawMessage, error) {
	if len(o.raw) > 0 {
		return o.raw, nil
	}
	return json.Marshal(o)
}

func (o *CatalogObject) UnmarshalJSON(b []byte) error {
	type plain CatalogObject
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*o = CatalogObject(p)
	o.raw = append(json.RawMessage(nil), b...)
	return nil
}

// FirstPrice returns the price of the first variation, if any
func (d *ItemData) FirstPrice() (Money, bool) {
	if len(d.Variations) == 0 || d.Variations[0] == nil {
		return Money{}, false
	}
	v := d.Variations[0].ItemVariationData
	if v == nil || v.PriceMoney == nil {
		return Money{}, false
	}
	return *v.PriceMoney, true
}

// FirstImageID returns the first listed image id, if any
func (d *ItemData) FirstImageID() (string, bool) {
	if len(d.ImageIDs) == 0 || d.ImageIDs[0] == "" {
		return "", false
	}
	return d.ImageIDs[0], true
}

// FirstCategoryID prefers the categories list and falls back to the legacy
// category_id field.
func (d *ItemData) FirstCategoryID() (string, bool) {
	if len(d.Categories) > 0 && d.Categories[0].ID != "" {
		return d.Categories[0].ID, true
	}
	if d.CategoryID != "" {
		return d.CategoryID, true
	}
	return "", false
}
