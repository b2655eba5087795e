package domain

// Metadata keys attached to every retrievable document
const (
	MetadataKeyID          = "id"
	MetadataKeyTitle       = "title"
	MetadataKeyCategory    = "category"
	MetadataKeyBrand       = "brand"
	MetadataKeyPrice       = "price"
	MetadataKeyRawDataJSON = "raw_data_json"
)

// Document is a retrievable document derived from one ProductRecord.
// Content carries a human-readable summary block plus a verbatim JSON
// serialization of the record, so similarity search over Content alone can
// match any query the record could answer.
type Document struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
