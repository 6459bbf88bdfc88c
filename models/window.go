package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Window is the persisted shape. Price is stored as a fixed-point decimal
// string and the gallery as a JSON-encoded text column; API responses never
// expose either raw form, see WindowResponse.
type Window struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CollectionID     uint      `gorm:"index" json:"collection_id"`
	Price            string    `gorm:"type:decimal(10,2)" json:"-"`
	Description      string    `json:"description"`
	MainImageURL     string    `json:"main_image_url"`
	GalleryImageURLs string    `gorm:"type:text" json:"-"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// WindowResponse is the API shape of a window: price as a number, gallery as
// an ordered sequence of URLs (empty slice when the window has none).
type WindowResponse struct {
	ID               uint      `json:"id"`
	CollectionID     uint      `json:"collection_id"`
	Price            float64   `json:"price"`
	Description      string    `json:"description"`
	MainImageURL     string    `json:"main_image_url"`
	GalleryImageURLs []string  `json:"gallery_image_urls"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToResponse coerces the stored column values into the API shape. A stored
// price that no longer parses is surfaced as an error rather than silently
// zeroed.
func (w *Window) ToResponse() (WindowResponse, error) {
	price, err := strconv.ParseFloat(w.Price, 64)
	if err != nil {
		return WindowResponse{}, fmt.Errorf("window %d has malformed price %q: %w", w.ID, w.Price, err)
	}
	return WindowResponse{
		ID:               w.ID,
		CollectionID:     w.CollectionID,
		Price:            price,
		Description:      w.Description,
		MainImageURL:     w.MainImageURL,
		GalleryImageURLs: DecodeGallery(w.GalleryImageURLs),
		CreatedAt:        w.CreatedAt,
	}, nil
}

// FormatPrice renders a price for the fixed-point decimal column.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

// EncodeGallery renders a gallery for its JSON text column. A nil gallery is
// stored as the empty array, never as null.
func EncodeGallery(urls []string) string {
	if urls == nil {
		urls = []string{}
	}
	encoded, _ := json.Marshal(urls)
	return string(encoded)
}

// DecodeGallery parses a stored gallery column. Missing or malformed values
// decode to the empty slice.
func DecodeGallery(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil || urls == nil {
		return []string{}
	}
	return urls
}

type CreateWindowInput struct {
	CollectionID     uint     `json:"collection_id" validate:"required"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	Description      string   `json:"description" validate:"required"`
	MainImageURL     string   `json:"main_image_url" validate:"required,url"`
	GalleryImageURLs []string `json:"gallery_image_urls" validate:"dive,url"`
}

// UpdateWindowInput carries partial updates; pointer fields distinguish
// "not supplied" from "supplied as zero value".
type UpdateWindowInput struct {
	ID               uint      `json:"id" validate:"required"`
	CollectionID     *uint     `json:"collection_id" validate:"omitempty,gt=0"`
	Price            *float64  `json:"price" validate:"omitempty,gt=0"`
	Description      *string   `json:"description" validate:"omitempty,min=1"`
	MainImageURL     *string   `json:"main_image_url" validate:"omitempty,url"`
	GalleryImageURLs *[]string `json:"gallery_image_urls" validate:"omitempty,dive,url"`
}

// Fields returns only the supplied columns, already coerced to their stored
// representation.
func (in *UpdateWindowInput) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.CollectionID != nil {
		fields["collection_id"] = *in.CollectionID
	}
	if in.Price != nil {
		fields["price"] = FormatPrice(*in.Price)
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.MainImageURL != nil {
		fields["main_image_url"] = *in.MainImageURL
	}
	if in.GalleryImageURLs != nil {
		fields["gallery_image_urls"] = EncodeGallery(*in.GalleryImageURLs)
	}
	return fields
}
