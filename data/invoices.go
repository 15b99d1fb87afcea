package data

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/yourusername/invoice-dashboard/models"
	"github.com/yourusername/invoice-dashboard/store"
	"github.com/yourusername/invoice-dashboard/utils"
	"golang.org/x/sync/errgroup"
)

const latestInvoicesLimit = 5

func (s *Service) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	revenue, err := s.store.Revenue(ctx)
	if err != nil {
		return nil, s.fail(ctx, "FetchRevenue", "Failed to fetch revenue data.", err)
	}
	return revenue, nil
}

// FetchInvoices returns all invoices ordered by date, newest first. Invoices
// sharing a date keep their stored order. Index holds each invoice's position
// in that order; the stored ID is left as is.
func (s *Service) FetchInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.sortedInvoices(ctx)
	if err != nil {
		return nil, s.fail(ctx, "FetchInvoices", "Failed to fetch invoices.", err)
	}
	return invoices, nil
}

func (s *Service) sortedInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return nil, err
	}
	sortByDateDescending(invoices)
	return invoices, nil
}

func sortByDateDescending(invoices []models.Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].Date > invoices[j].Date
	})
	for i := range invoices {
		invoices[i].Index = i
	}
}

// FetchLatestInvoices returns the five most recent invoices joined with their
// customers. An invoice whose customer is missing fails the whole request.
func (s *Service) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	const op, msg = "FetchLatestInvoices", "Failed to fetch the latest invoices."

	invoices, err := s.sortedInvoices(ctx)
	if err != nil {
		return nil, s.fail(ctx, op, msg, err)
	}
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, s.fail(ctx, op, msg, err)
	}

	if len(invoices) > latestInvoicesLimit {
		invoices = invoices[:latestInvoicesLimit]
	}
	rows, err := joinCustomers(invoices, customers)
	if err != nil {
		return nil, s.fail(ctx, op, msg, err)
	}

	latest := make([]models.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, models.LatestInvoice{
			ID:       row.ID,
			Amount:   utils.FormatCurrency(row.Amount),
			Name:     row.Name,
			Email:    row.Email,
			ImageURL: row.ImageURL,
		})
	}
	return latest, nil
}

// FetchCardData loads invoices and customers concurrently and summarises them.
func (s *Service) FetchCardData(ctx context.Context) (models.CardData, error) {
	var (
		invoices  []models.Invoice
		customers []models.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = s.store.Invoices(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.store.Customers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.CardData{}, s.fail(ctx, "FetchCardData", "Failed to fetch card data.", err)
	}

	var paid, pending int64
	for _, inv := range invoices {
		switch inv.Status {
		case models.StatusPaid:
			paid += inv.Amount
		case models.StatusPending:
			pending += inv.Amount
		}
	}

	return models.CardData{
		NumberOfCustomers:    len(customers),
		NumberOfInvoices:     len(invoices),
		TotalPaidInvoices:    utils.FormatCurrency(paid),
		TotalPendingInvoices: utils.FormatCurrency(pending),
	}, nil
}

// FetchFilteredInvoices returns one page of the invoices matching query.
// Pages are 1-indexed; a page outside the result yields an empty slice.
func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]models.InvoicesTable, error) {
	rows, err := s.filteredInvoices(ctx, query)
	if err != nil {
		return nil, s.fail(ctx, "FetchFilteredInvoices", "Failed to fetch invoices.", err)
	}
	return paginate(rows, page), nil
}

// FetchInvoicesPages returns how many pages the invoices matching query span.
func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	rows, err := s.filteredInvoices(ctx, query)
	if err != nil {
		return 0, s.fail(ctx, "FetchInvoicesPages", "Failed to fetch total number of invoices.", err)
	}
	return (len(rows) + ItemsPerPage - 1) / ItemsPerPage, nil
}

// filteredInvoices joins every invoice with its customer and keeps the rows
// where name, email, amount, date or status contains query (case-sensitive).
func (s *Service) filteredInvoices(ctx context.Context, query string) ([]models.InvoicesTable, error) {
	invoices, err := s.sortedInvoices(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := joinCustomers(invoices, customers)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.InvoicesTable, 0, len(rows))
	for _, row := range rows {
		if matches(row, query) {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

func matches(row models.InvoicesTable, query string) bool {
	return strings.Contains(row.Name, query) ||
		strings.Contains(row.Email, query) ||
		strings.Contains(strconv.FormatInt(row.Amount, 10), query) ||
		strings.Contains(row.Date, query) ||
		strings.Contains(row.Status, query)
}

func paginate(rows []models.InvoicesTable, page int) []models.InvoicesTable {
	if page < 1 {
		return []models.InvoicesTable{}
	}
	offset := (page - 1) * ItemsPerPage
	if offset >= len(rows) {
		return []models.InvoicesTable{}
	}
	end := min(offset+ItemsPerPage, len(rows))
	return rows[offset:end]
}

func joinCustomers(invoices []models.Invoice, customers []models.Customer) ([]models.InvoicesTable, error) {
	byID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		if _, seen := byID[c.ID]; !seen {
			byID[c.ID] = c
		}
	}

	rows := make([]models.InvoicesTable, 0, len(invoices))
	for _, inv := range invoices {
		c, ok := byID[inv.CustomerID]
		if !ok {
			return nil, &store.NotFoundError{Entity: "customer", Key: inv.CustomerID}
		}
		rows = append(rows, models.InvoicesTable{
			ID:         inv.ID,
			Index:      inv.Index,
			CustomerID: c.ID,
			Name:       c.Name,
			Email:      c.Email,
			ImageURL:   c.ImageURL,
			Date:       inv.Date,
			Amount:     inv.Amount,
			Status:     inv.Status,
		})
	}
	return rows, nil
}

// FetchInvoiceByID looks an invoice up by its stored id. When no stored id
// matches and id is a non-negative integer, it is read as the invoice's
// position in date-descending order. The amount is returned in dollars.
func (s *Service) FetchInvoiceByID(ctx context.Context, id string) (models.InvoiceForm, error) {
	const op, msg = "FetchInvoiceByID", "Failed to fetch invoice."

	invoices, err := s.sortedInvoices(ctx)
	if err != nil {
		return models.InvoiceForm{}, s.fail(ctx, op, msg, err)
	}

	inv, ok := findInvoice(invoices, id)
	if !ok {
		return models.InvoiceForm{}, s.fail(ctx, op, msg, &store.NotFoundError{Entity: "invoice", Key: id})
	}

	return models.InvoiceForm{
		ID:         inv.ID,
		Index:      inv.Index,
		CustomerID: inv.CustomerID,
		Amount:     utils.CentsToUnits(inv.Amount),
		Date:       inv.Date,
		Status:     inv.Status,
	}, nil
}

func findInvoice(invoices []models.Invoice, id string) (models.Invoice, bool) {
	for _, inv := range invoices {
		if inv.ID != "" && inv.ID == id {
			return inv, true
		}
	}
	pos, err := strconv.Atoi(id)
	if err != nil || pos < 0 || pos >= len(invoices) {
		return models.Invoice{}, false
	}
	return invoices[pos], true
}
