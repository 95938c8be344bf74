// internal/models/project.go
package models

import (
	"github.com/lib/pq"
)

type Project struct {
	BaseModel
	Title           string         `json:"title" gorm:"size:255;not null"`
	Description     string         `json:"description" gorm:"type:text;not null"`
	Price           float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Category        string         `json:"category" gorm:"size:100;not null;index"`
	Technologies    pq.StringArray `json:"technologies" gorm:"type:text[]"`
	SellerID        uint           `json:"seller_id" gorm:"not null;index"`
	PreviewImageURL string         `json:"preview_image_url,omitempty" gorm:"size:512"`
	CodeFileURL     string         `json:"code_file_url" gorm:"size:512;not null"`
	Verified        bool           `json:"verified" gorm:"not null;default:false"`
	Downloads       int64          `json:"downloads" gorm:"not null;default:0"`
	// Rating is the arithmetic mean of review ratings, recomputed on every
	// new review together with ReviewCount.
	Rating      float64 `json:"rating" gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount int64   `json:"review_count" gorm:"not null;default:0"`

	// Relationships
	Seller    *User      `json:"-" gorm:"foreignKey:SellerID"`
	Purchases []Purchase `json:"-" gorm:"foreignKey:ProjectID"`
	Reviews   []Review   `json:"-" gorm:"foreignKey:ProjectID"`
}

// ProjectWithSeller is the joined projection returned by listing and detail
// reads: the project row plus the seller's public fields.
type ProjectWithSeller struct {
	Project
	Seller *UserRef `json:"seller"`
}
