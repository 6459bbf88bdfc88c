package models

import (
	"testing"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1999.99, "1999.99"},
		{10, "10.00"},
		{0.5, "0.50"},
		{1234567.89, "1234567.89"},
	}
	for _, c := range cases {
		if got := FormatPrice(c.in); got != c.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPriceRoundTrip(t *testing.T) {
	w := Window{ID: 1, Price: FormatPrice(1999.99)}
	resp, err := w.ToResponse()
	if err != nil {
		t.Fatalf("ToResponse: %v", err)
	}
	if resp.Price != 1999.99 {
		t.Fatalf("price drifted through round trip: got %v", resp.Price)
	}
}

func TestToResponseMalformedPrice(t *testing.T) {
	w := Window{ID: 7, Price: "not-a-price"}
	if _, err := w.ToResponse(); err == nil {
		t.Fatal("expected error for malformed stored price")
	}
}

func TestEncodeGallery(t *testing.T) {
	if got := EncodeGallery(nil); got != "[]" {
		t.Errorf("nil gallery encoded as %q, want []", got)
	}
	if got := EncodeGallery([]string{}); got != "[]" {
		t.Errorf("empty gallery encoded as %q, want []", got)
	}
	got := EncodeGallery([]string{"https://a.test/1.jpg", "https://a.test/2.jpg"})
	want := `["https://a.test/1.jpg","https://a.test/2.jpg"]`
	if got != want {
		t.Errorf("gallery encoded as %q, want %q", got, want)
	}
}

func TestDecodeGalleryDefaults(t *testing.T) {
	for _, raw := range []string{"", "null", "not json", `{"a":1}`} {
		urls := DecodeGallery(raw)
		if urls == nil {
			t.Fatalf("DecodeGallery(%q) returned nil, want empty slice", raw)
		}
		if len(urls) != 0 {
			t.Fatalf("DecodeGallery(%q) = %v, want empty", raw, urls)
		}
	}
}

func TestDecodeGalleryPreservesOrder(t *testing.T) {
	urls := DecodeGallery(`["https://a.test/2.jpg","https://a.test/1.jpg"]`)
	if len(urls) != 2 || urls[0] != "https://a.test/2.jpg" || urls[1] != "https://a.test/1.jpg" {
		t.Fatalf("unexpected gallery order: %v", urls)
	}
}

func TestUpdateWindowInputFields(t *testing.T) {
	in := &UpdateWindowInput{ID: 3}
	if fields := in.Fields(); len(fields) != 0 {
		t.Fatalf("expected no fields for id-only input, got %v", fields)
	}

	price := 42.5
	gallery := []string{"https://a.test/1.jpg"}
	in = &UpdateWindowInput{ID: 3, Price: &price, GalleryImageURLs: &gallery}
	fields := in.Fields()
	if fields["price"] != "42.50" {
		t.Errorf("price not coerced for storage: %v", fields["price"])
	}
	if fields["gallery_image_urls"] != `["https://a.test/1.jpg"]` {
		t.Errorf("gallery not coerced for storage: %v", fields["gallery_image_urls"])
	}
	if _, ok := fields["description"]; ok {
		t.Error("absent field must not be applied")
	}
}
