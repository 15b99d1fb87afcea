package models

import "github.com/shopspring/decimal"

// LatestInvoice is an invoice joined with its customer for the
// "latest invoices" card. Amount is already formatted for display.
type LatestInvoice struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// InvoicesTable is a full invoice/customer join row used by the invoice search.
type InvoicesTable struct {
	ID         string `json:"id"`
	Index      int    `json:"index"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"image_url"`
	Date       string `json:"date"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

type CardData struct {
	NumberOfCustomers    int    `json:"numberOfCustomers"`
	NumberOfInvoices     int    `json:"numberOfInvoices"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// InvoiceForm is the shape used to prefill the invoice edit form.
// Amount is in major currency units.
type InvoiceForm struct {
	ID         string          `json:"id"`
	Index      int             `json:"index"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Status     string          `json:"status"`
}

// CustomersTable is a customer directory row with formatted totals.
type CustomersTable struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
