package domain

import "fmt"

// ProductRecord mirrors one product entry from the upstream catalog API.
// Optional fields are pointers (or nil-able slices/maps) so the full-JSON
// rendering of a record serializes absent fields as null instead of
// dropping them.
type ProductRecord struct {
	ID                  int              `json:"id"`
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	Category            string           `json:"category"`
	Price               float64          `json:"price"`
	DiscountPercentage  *float64         `json:"discountPercentage"`
	Rating              *float64         `json:"rating"`
	Stock               *int             `json:"stock"`
	Brand               *string          `json:"brand"`
	SKU                 *string          `json:"sku"`
	Weight              *float64         `json:"weight"`
	Thumbnail           *string          `json:"thumbnail"`
	Images              []string         `json:"images"`
	Tags                []string         `json:"tags"`
	Dimensions          map[string]any   `json:"dimensions"`
	WarrantyInformation *string          `json:"warrantyInformation"`
	ShippingInformation *string          `json:"shippingInformation"`
	AvailabilityStatus  *string          `json:"availabilityStatus"`
	Reviews             []map[string]any `json:"reviews"`
	ReturnPolicy        *string          `json:"returnPolicy"`
	MinimumOrderQuantity *int             `json:"minimumOrderQuantity"`
	Meta                map[string]any   `json:"meta"`
}

// Validate checks the required fields of a catalog record.
func (p ProductRecord) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("%w: product record missing id", ErrValidation)
	}
	if p.Title == "" {
		return fmt.Errorf("%w: product %d missing title", ErrValidation, p.ID)
	}
	if p.Description == "" {
		return fmt.Errorf("%w: product %d missing description", ErrValidation, p.ID)
	}
	if p.Category == "" {
		return fmt.Errorf("%w: product %d missing category", ErrValidation, p.ID)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: product %d missing price", ErrValidation, p.ID)
	}
	return nil
}
