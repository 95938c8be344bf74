// internal/models/report.go
package models

type Report struct {
	BaseModel
	ProjectID  uint `json:"project_id" gorm:"not null;index"`
	ReporterID uint `json:"reporter_id" gorm:"not null;index"`
	// SellerID is denormalized from the reported project so seller inboxes
	// can be read without a join through projects.
	SellerID    uint         `json:"seller_id" gorm:"not null;index"`
	Reason      string       `json:"reason" gorm:"size:255;not null"`
	Description string       `json:"description,omitempty" gorm:"type:text"`
	Status      ReportStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	// Relationships
	Reporter *User    `json:"-" gorm:"foreignKey:ReporterID"`
	Seller   *User    `json:"-" gorm:"foreignKey:SellerID"`
	Project  *Project `json:"-" gorm:"foreignKey:ProjectID"`
}

// ReportProjectRef is the project projection embedded in report listings.
type ReportProjectRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// ReportWithDetails is the joined projection returned by the seller's
// report inbox.
type ReportWithDetails struct {
	Report
	Project  *ReportProjectRef `json:"project"`
	Reporter *UserRef          `json:"reporter"`
}
