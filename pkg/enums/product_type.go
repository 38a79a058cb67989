package enums

import "fmt"

// ProductType categorizes a catalog entry. A product may carry several.
type ProductType string

const (
	ProductTypeBook     ProductType = "book"
	ProductTypeSlides   ProductType = "slides"
	ProductTypeVideo    ProductType = "video"
	ProductTypeRobotics ProductType = "robotics"
	ProductTypeCombo    ProductType = "combo"
)

var validProductTypes = []ProductType{
	ProductTypeBook,
	ProductTypeSlides,
	ProductTypeVideo,
	ProductTypeRobotics,
	ProductTypeCombo,
}

// String implements fmt.Stringer.
func (p ProductType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductType.
func (p ProductType) IsValid() bool {
	for _, candidate := range validProductTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductType converts raw input into a ProductType.
func ParseProductType(value string) (ProductType, error) {
	for _, candidate := range validProductTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product type %q", value)
}
