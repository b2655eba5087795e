// Package docbuild converts catalog product records into retrievable
// documents: a natural-language summary block for embedding quality plus a
// verbatim JSON snapshot for full information retention.
package docbuild

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sheikhmdsamiul/productchat/internal/domain"
)

// Section markers referenced structurally by the answer-synthesis prompt.
// Changing them degrades retrieval quality, so they are part of the contract.
const (
	SummaryMarker = "=== PRODUCT SUMMARY ==="
	JSONMarker    = "=== FULL PRODUCT JSON ==="
)

// Build converts a product record into a retrievable document. Pure and
// deterministic; the record is expected to be validated by the catalog layer.
func Build(rec domain.ProductRecord) (domain.Document, error) {
	jsonContent, err := marshalRecord(rec)
	if err != nil {
		return domain.Document{}, fmt.Errorf("marshal product %d: %w", rec.ID, err)
	}

	summaryParts := []string{
		"Product Title: " + rec.Title,
		"Description: " + rec.Description,
		"Category: " + rec.Category,
		"Brand: " + brandOrNA(rec.Brand),
		"Price: $" + formatNumber(rec.Price),
		"Discount: " + discountOrZero(rec.DiscountPercentage) + "%",
		"Rating: " + ratingOrNA(rec.Rating),
		"Stock: " + stockOrUnknown(rec.Stock),
	}

	if len(rec.Tags) > 0 {
		summaryParts = append(summaryParts, "Tags: "+strings.Join(rec.Tags, ", "))
	}
	if len(rec.Reviews) > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("Total Reviews: %d", len(rec.Reviews)))
	}

	content := SummaryMarker + "\n" +
		strings.Join(summaryParts, "\n") +
		"\n\n" + JSONMarker + "\n" +
		jsonContent

	metadata := map[string]any{
		domain.MetadataKeyID:          rec.ID,
		domain.MetadataKeyTitle:       rec.Title,
		domain.MetadataKeyCategory:    rec.Category,
		domain.MetadataKeyBrand:       rec.Brand,
		domain.MetadataKeyPrice:       rec.Price,
		domain.MetadataKeyRawDataJSON: jsonContent,
	}

	return domain.Document{Content: content, Metadata: metadata}, nil
}

// BuildAll converts a batch of records, preserving catalog order.
func BuildAll(recs []domain.ProductRecord) ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(recs))
	for _, rec := range recs {
		doc, err := Build(rec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// marshalRecord renders the full record as indented JSON with every field
// present (absent optionals as null) and without HTML escaping.
func marshalRecord(rec domain.ProductRecord) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func brandOrNA(brand *string) string {
	if brand == nil || *brand == "" {
		return "N/A"
	}
	return *brand
}

func discountOrZero(discount *float64) string {
	if discount == nil {
		return "0"
	}
	return formatNumber(*discount)
}

func ratingOrNA(rating *float64) string {
	if rating == nil || *rating == 0 {
		return "N/A"
	}
	return formatNumber(*rating)
}

func stockOrUnknown(stock *int) string {
	if stock == nil || *stock == 0 {
		return "Unknown"
	}
	return strconv.Itoa(*stock)
}
