package data

import (
	"context"
	"sort"

	"github.com/yourusername/invoice-dashboard/models"
	"github.com/yourusername/invoice-dashboard/utils"
)

func (s *Service) FetchCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, s.fail(ctx, "FetchCustomers", "Failed to fetch all customers.", err)
	}
	return customers, nil
}

// FetchCustomerFields lists customer ids and names, sorted by name, for the
// invoice form's customer picker.
func (s *Service) FetchCustomerFields(ctx context.Context) ([]models.CustomerField, error) {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, s.fail(ctx, "FetchCustomerFields", "Failed to fetch all customers.", err)
	}

	fields := make([]models.CustomerField, 0, len(customers))
	for _, c := range customers {
		fields = append(fields, models.CustomerField{ID: c.ID, Name: c.Name})
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})
	return fields, nil
}

// FetchFilteredCustomers returns the customer directory: customers whose name
// or email contains query (case-insensitive) with their invoice totals.
func (s *Service) FetchFilteredCustomers(ctx context.Context, query string) ([]models.CustomersTable, error) {
	totals, err := s.store.FilteredCustomers(ctx, query)
	if err != nil {
		return nil, s.fail(ctx, "FetchFilteredCustomers", "Failed to fetch customer table.", err)
	}

	customers := make([]models.CustomersTable, 0, len(totals))
	for _, t := range totals {
		customers = append(customers, models.CustomersTable{
			ID:            t.ID,
			Name:          t.Name,
			Email:         t.Email,
			ImageURL:      t.ImageURL,
			TotalInvoices: t.TotalInvoices,
			TotalPending:  utils.FormatCurrency(t.TotalPending),
			TotalPaid:     utils.FormatCurrency(t.TotalPaid),
		})
	}
	return customers, nil
}
