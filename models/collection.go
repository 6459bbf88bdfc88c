package models

import "time"

type WindowCollection struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	MainImageURL string    `json:"main_image_url"`
	BrandName    string    `json:"brand_name"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	Windows      []Window  `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"-"`
}

// WindowCollectionWithWindows is the detail-fetch shape: the collection plus
// all of its windows, already coerced to the API representation.
type WindowCollectionWithWindows struct {
	WindowCollection
	Windows []WindowResponse `json:"windows"`
}

type CreateWindowCollectionInput struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	MainImageURL string `json:"main_image_url" validate:"required,url"`
	BrandName    string `json:"brand_name" validate:"required"`
}

// UpdateWindowCollectionInput carries partial updates. Pointer fields
// distinguish "not supplied" from "supplied as empty".
type UpdateWindowCollectionInput struct {
	ID           uint    `json:"id" validate:"required"`
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Description  *string `json:"description" validate:"omitempty,min=1"`
	MainImageURL *string `json:"main_image_url" validate:"omitempty,url"`
	BrandName    *string `json:"brand_name" validate:"omitempty,min=1"`
}

// Fields returns only the supplied columns, keyed for a store update.
func (in *UpdateWindowCollectionInput) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.MainImageURL != nil {
		fields["main_image_url"] = *in.MainImageURL
	}
	if in.BrandName != nil {
		fields["brand_name"] = *in.BrandName
	}
	return fields
}
