package biztrack

import (
	"errors"
	"reflect"
	"testing"
)

func TestEncodeDecodeItems_RoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		items []LineItem
	}{
		{name: "empty", items: []LineItem{}},
		{
			name:  "single item",
			items: []LineItem{{Name: "OG Kush", Quantity: 3, UnitPrice: 38}},
		},
		{
			name: "multiple items",
			items: []LineItem{
				{Name: "OG Kush", Quantity: 3, UnitPrice: 38},
				{Name: "Sour Diesel", Quantity: 2, UnitPrice: 40},
				{Name: "Meth", Quantity: 1, UnitPrice: 70},
			},
		},
		{
			name:  "sanitized free text",
			items: []LineItem{{Name: SanitizeName("Grandaddy: Purple|X"), Quantity: 1, UnitPrice: 45}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := EncodeItems(tc.items)
			decoded, err := DecodeItems(encoded)
			if err != nil {
				t.Fatalf("DecodeItems(%q) returned an unexpected error: %v", encoded, err)
			}
			if !reflect.DeepEqual(decoded, tc.items) {
				t.Errorf("round trip mismatch: got %v, want %v", decoded, tc.items)
			}
		})
	}
}

func TestDecodeItems_Empty(t *testing.T) {
	items, err := DecodeItems("")
	if err != nil {
		t.Fatalf("DecodeItems(\"\") returned an unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("DecodeItems(\"\") = %v, want empty", items)
	}
}

func TestDecodeItems_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		field string
	}{
		{name: "missing part", field: "OG Kush:3"},
		{name: "extra part", field: "OG Kush:3:38:extra"},
		{name: "non-numeric quantity", field: "OG Kush:three:38"},
		{name: "non-numeric price", field: "OG Kush:3:$38"},
		{name: "bad segment among good ones", field: "OG Kush:3:38|broken|Meth:1:70"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeItems(tc.field)
			if err == nil {
				t.Fatalf("DecodeItems(%q) did not fail", tc.field)
			}
			var malformed *MalformedFieldError
			if !errors.As(err, &malformed) {
				t.Fatalf("DecodeItems(%q) error is %T, want *MalformedFieldError", tc.field, err)
			}
		})
	}
}

func TestSanitizeName(t *testing.T) {
	got := SanitizeName("a:b|c")
	if got != "abc" {
		t.Errorf("SanitizeName = %q, want %q", got, "abc")
	}
}

func TestFormatItems(t *testing.T) {
	items := []LineItem{
		{Name: "OG Kush", Quantity: 3, UnitPrice: 38},
		{Name: "Meth", Quantity: 1, UnitPrice: 70},
	}
	got := FormatItems(items)
	want := "OG Kush (3), Meth (1)"
	if got != want {
		t.Errorf("FormatItems = %q, want %q", got, want)
	}
}
