package domain

type Bucket string

func (b Bucket) String() string {
	return string(b)
}

const (
	BucketDosas    Bucket = "dosas"
	BucketBiryanis Bucket = "biryanis"
	BucketCurries  Bucket = "curries"
	BucketOther    Bucket = "other"
)

var Buckets = []Bucket{
	BucketDosas,
	BucketBiryanis,
	BucketCurries,
	BucketOther,
}

// MenuItem is a catalog item reshaped for the storefront
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`    // display string, e.g. "$12.50"
	Image       *string `json:"image"`    // null when the item has no resolvable image
	Category    string  `json:"category"` // lower-cased category name, may be empty
}

// Menu groups menu items by bucket. Every bucket encodes as an array, never null.
type Menu struct {
	Dosas    []MenuItem `json:"dosas"`
	Biryanis []MenuItem `json:"biryanis"`
	Curries  []MenuItem `json:"curries"`
	Other    []MenuItem `json:"other"`
}

func NewMenu() *Menu {
	return &Menu{
		Dosas:    []MenuItem{},
		Biryanis: []MenuItem{},
		Curries:  []MenuItem{},
		Other:    []MenuItem{},
	}
}

func (m *Menu) Add(bucket Bucket, item MenuItem) {
	switch bucket {
	case BucketDosas:
		m.Dosas = append(m.Dosas, item)
	case BucketBiryanis:
		m.Biryanis = append(m.Biryanis, item)
	case BucketCurries:
		m.Curries = append(m.Curries, item)
	default:
		m.Other = append(m.Other, item)
	}
}

func (m *Menu) Len() int {
	return len(m.Dosas) + len(m.Biryanis) + len(m.Curries) + len(m.Other)
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
