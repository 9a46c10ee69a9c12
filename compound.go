package biztrack

import (
	"fmt"
	"strconv"
	"strings"
)

// A LineItem is one entry inside a compound field: a named thing with a
// quantity and a unit price. It is used both for products sold in a sale
// and for materials consumed by a product recipe.
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice int
}

// String renders the item the way report breakdowns do, e.g. "OG Kush (3)".
func (it LineItem) String() string {
	return fmt.Sprintf("%s (%d)", it.Name, it.Quantity)
}

// MalformedFieldError reports a compound field that does not decode into
// well-formed line items. It carries the offending segment so the caller
// can surface which record failed instead of silently skipping it.
type MalformedFieldError struct {
	Field   string // the whole encoded field
	Segment string // the segment that failed
	Reason  string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed compound field: segment %q: %s", e.Segment, e.Reason)
}

// SanitizeName strips the compound field delimiters from a free-text name.
// Every name must pass through here before it is put into a LineItem: the
// codec assumes sanitized input to guarantee a lossless round-trip.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, ":", "")
	name = strings.ReplaceAll(name, "|", "")
	return name
}

// EncodeItems serializes line items into a single compound field, items
// joined with "|" and each item's fields joined with ":". An empty list
// encodes to the empty string.
func EncodeItems(items []LineItem) string {
	segments := make([]string, 0, len(items))
	for _, it := range items {
		segments = append(segments, fmt.Sprintf("%s:%d:%d", it.Name, it.Quantity, it.UnitPrice))
	}
	return strings.Join(segments, "|")
}

// DecodeItems parses a compound field back into line items. The empty
// string decodes to an empty list. Any segment that does not split into
// exactly (name, quantity, unit price) with integer numeric parts yields
// a *MalformedFieldError.
func DecodeItems(field string) ([]LineItem, error) {
	if field == "" {
		return []LineItem{}, nil
	}
	segments := strings.Split(field, "|")
	items := make([]LineItem, 0, len(segments))
	for _, seg := range segments {
		parts := strings.Split(seg, ":")
		if len(parts) != 3 {
			return nil, &MalformedFieldError{Field: field, Segment: seg, Reason: fmt.Sprintf("want 3 parts, got %d", len(parts))}
		}
		quantity, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, &MalformedFieldError{Field: field, Segment: seg, Reason: fmt.Sprintf("quantity %q is not an integer", parts[1])}
		}
		price, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, &MalformedFieldError{Field: field, Segment: seg, Reason: fmt.Sprintf("unit price %q is not an integer", parts[2])}
		}
		items = append(items, LineItem{Name: parts[0], Quantity: quantity, UnitPrice: price})
	}
	return items, nil
}

// FormatItems renders decoded items for human readability, e.g.
// "OG Kush (3), Sour Diesel (2)". Reports use this instead of the raw
// encoded string.
func FormatItems(items []LineItem) string {
	formatted := make([]string, 0, len(items))
	for _, it := range items {
		formatted = append(formatted, it.String())
	}
	return strings.Join(formatted, ", ")
}
