package domain

type ObjectType string

func (t ObjectType) String() string {
	return string(t)
}

const (
	ObjectTypeItem          ObjectType = "ITEM"
	ObjectTypeItemVariation ObjectType = "ITEM_VARIATION"
	ObjectTypeCategory      ObjectType = "CATEGORY"
	ObjectTypeImage         ObjectType = "IMAGE"
)

// MenuObjectTypes are the catalog types a menu scan needs
var MenuObjectTypes = []ObjectType{
	ObjectTypeItem,
	ObjectTypeCategory,
	ObjectTypeImage,
}

// Kind is the closed set of catalog object variants this service understands
type Kind int

const (
	KindOther Kind = iota
	KindItem
	KindCategory
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindCategory:
		return "category"
	case KindImage:
		return "image"
	default:
		return "other"
	}
}
