// internal/models/review.go
package models

type Review struct {
	BaseModel
	ProjectID uint   `json:"project_id" gorm:"not null;index"`
	BuyerID   uint   `json:"buyer_id" gorm:"not null;index"`
	Rating    int    `json:"rating" gorm:"not null"`
	Comment   string `json:"comment,omitempty" gorm:"type:text"`

	// Relationships
	Buyer   *User    `json:"-" gorm:"foreignKey:BuyerID"`
	Project *Project `json:"-" gorm:"foreignKey:ProjectID"`
}

// ReviewWithBuyer is the joined projection returned when listing a
// project's reviews.
type ReviewWithBuyer struct {
	Review
	Buyer *UserRef `json:"buyer"`
}
