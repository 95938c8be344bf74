// internal/models/purchase.go
package models

type Purchase struct {
	BaseModel
	// A buyer can hold at most one purchase per project; the composite
	// unique index turns concurrent duplicate confirmations into a
	// constraint violation instead of a second row.
	BuyerID               uint    `json:"buyer_id" gorm:"not null;uniqueIndex:idx_purchases_buyer_project"`
	ProjectID             uint    `json:"project_id" gorm:"not null;uniqueIndex:idx_purchases_buyer_project"`
	Amount                float64 `json:"amount" gorm:"type:decimal(10,2);not null"`
	StripePaymentIntentID string  `json:"stripe_payment_intent_id,omitempty" gorm:"size:255"`

	// Relationships
	Buyer   *User    `json:"-" gorm:"foreignKey:BuyerID"`
	Project *Project `json:"-" gorm:"foreignKey:ProjectID"`
}

// PurchaseProjectRef is the project projection embedded in a buyer's
// purchase history.
type PurchaseProjectRef struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	PreviewImageURL string `json:"preview_image_url,omitempty"`
	CodeFileURL     string `json:"code_file_url"`
}

// PurchaseWithProject is the joined projection of a purchase row and the
// purchased project.
type PurchaseWithProject struct {
	Purchase
	Project *PurchaseProjectRef `json:"project"`
}
