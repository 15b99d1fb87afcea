package store

import (
	"context"

	"github.com/yourusername/invoice-dashboard/models"
)

// Store is the storage capability set shared by the file and database
// backends. Every call returns a fresh copy the caller may modify.
type Store interface {
	Revenue(ctx context.Context) ([]models.Revenue, error)
	Invoices(ctx context.Context) ([]models.Invoice, error)
	Customers(ctx context.Context) ([]models.Customer, error)
	Users(ctx context.Context) ([]models.User, error)

	// FilteredCustomers returns customers whose name or email contains query
	// (case-insensitive), each with invoice count and paid/pending sums,
	// ordered by name ascending.
	FilteredCustomers(ctx context.Context, query string) ([]models.CustomerTotals, error)
}
