package models

// Invoice statuses.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

type Invoice struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	CustomerID string `gorm:"size:36;not null;index" json:"customer_id"`
	Amount     int64  `gorm:"not null" json:"amount"` // cents
	Date       string `gorm:"size:10;not null" json:"date"`
	Status     string `gorm:"size:20;not null" json:"status"` // paid, pending

	// Seq keeps the document order of invoices in the database, which
	// breaks ties between invoices sharing a date.
	Seq int `gorm:"not null;default:0" json:"-"`

	// Index is the position of the invoice in date-descending order.
	// It is derived per request and never persisted.
	Index int `gorm:"-" json:"index"`
}

// TableName overrides the table name
func (Invoice) TableName() string {
	return "invoices"
}
