package model

import (
	"sort"
	"time"
)

// ContentType classifies a CMS-managed marketing fragment.
type ContentType string

const (
	TypeIndustry    ContentType = "industry"
	TypeMaterial    ContentType = "material"
	TypeTestimonial ContentType = "testimonial"
	TypeProduct     ContentType = "product"
	TypeFeature     ContentType = "feature"
	TypeSection     ContentType = "section"
)

// ContentTypes lists every valid content type.
var ContentTypes = []ContentType{
	TypeIndustry, TypeMaterial, TypeTestimonial, TypeProduct, TypeFeature, TypeSection,
}

// Valid reports whether the type is one of the known values.
func (t ContentType) Valid() bool {
	for _, v := range ContentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ContentItem is a single CMS-managed marketing fragment (industry tile,
// testimonial, product card, ...). JSON field names match what the site
// client consumes.
type ContentItem struct {
	ID          string         `json:"id"`
	Type        ContentType    `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Content     string         `json:"content,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Color       string         `json:"color,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Rating      *float64       `json:"rating,omitempty"`
	Author      string         `json:"author,omitempty"`
	Company     string         `json:"company,omitempty"`
	IsActive    bool           `json:"isActive"`
	Order       int            `json:"order"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	CreatedBy   *int           `json:"createdBy,omitempty"`
}

// ContentRequest is the create/update payload for a content item.
// IsActive defaults to true when omitted; Order defaults to 0.
type ContentRequest struct {
	Type        string         `json:"type" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	Icon        string         `json:"icon"`
	Color       string         `json:"color"`
	ImageURL    string         `json:"imageUrl"`
	Rating      *float64       `json:"rating"`
	Author      string         `json:"author"`
	Company     string         `json:"company"`
	IsActive    *bool          `json:"isActive"`
	Order       *int           `json:"order"`
	Metadata    map[string]any `json:"metadata"`
}

// ReorderItem assigns a new display order to a single content item.
type ReorderItem struct {
	ID    string `json:"id" binding:"required,uuid"`
	Order int    `json:"order"`
}

// ReorderRequest is the bulk order-update payload.
type ReorderRequest struct {
	Items []ReorderItem `json:"items" binding:"required,min=1,dive"`
}

// ContentFilter narrows a content listing.
type ContentFilter struct {
	Type     ContentType
	IsActive *bool
}

// SortItems orders items by display order ascending, ties broken by
// creation time descending (newest first).
func SortItems(items []ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
