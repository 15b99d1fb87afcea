// Package file implements store.Store over a directory of JSON documents.
package file

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yourusername/invoice-dashboard/models"
	"github.com/yourusername/invoice-dashboard/store"
)

// Document names inside the data directory.
const (
	RevenueDocument   = "revenue.json"
	InvoicesDocument  = "invoices.json"
	CustomersDocument = "customers.json"
	UsersDocument     = "users.json"
)

type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path(name string) string {
	return filepath.Join(f.dir, name)
}

func (f *FileStore) Revenue(ctx context.Context) ([]models.Revenue, error) {
	return load[models.Revenue](ctx, f.path(RevenueDocument))
}

func (f *FileStore) Invoices(ctx context.Context) ([]models.Invoice, error) {
	return load[models.Invoice](ctx, f.path(InvoicesDocument))
}

func (f *FileStore) Customers(ctx context.Context) ([]models.Customer, error) {
	return load[models.Customer](ctx, f.path(CustomersDocument))
}

func (f *FileStore) Users(ctx context.Context) ([]models.User, error) {
	return load[models.User](ctx, f.path(UsersDocument))
}

// FilteredCustomers computes the customer directory aggregate in memory:
// customers left-joined with invoices, grouped by customer.
func (f *FileStore) FilteredCustomers(ctx context.Context, query string) ([]models.CustomerTotals, error) {
	customers, err := f.Customers(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := f.Invoices(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(customers, invoices, query), nil
}

// Aggregate filters customers by case-insensitive substring on name or email
// and sums their invoices by status. Customers without invoices get zero totals.
func Aggregate(customers []models.Customer, invoices []models.Invoice, query string) []models.CustomerTotals {
	byCustomer := make(map[string][]models.Invoice)
	for _, inv := range invoices {
		byCustomer[inv.CustomerID] = append(byCustomer[inv.CustomerID], inv)
	}

	needle := strings.ToLower(query)
	result := make([]models.CustomerTotals, 0, len(customers))
	for _, c := range customers {
		if !strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Email), needle) {
			continue
		}

		row := models.CustomerTotals{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		}
		for _, inv := range byCustomer[c.ID] {
			row.TotalInvoices++
			switch inv.Status {
			case models.StatusPaid:
				row.TotalPaid += inv.Amount
			case models.StatusPending:
				row.TotalPending += inv.Amount
			}
		}
		result = append(result, row)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func load[T any](ctx context.Context, path string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return store.Load[T](path)
}

var _ store.Store = (*FileStore)(nil)
