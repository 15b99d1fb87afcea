package models

type Customer struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;not null" json:"email"`
	ImageURL string `gorm:"size:255;not null" json:"image_url"`
}

// TableName overrides the table name
func (Customer) TableName() string {
	return "customers"
}

// CustomerTotals is one row of the customer directory aggregate: a customer
// together with its invoice count and per-status sums in cents.
type CustomerTotals struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  int64  `json:"total_pending"`
	TotalPaid     int64  `json:"total_paid"`
}
