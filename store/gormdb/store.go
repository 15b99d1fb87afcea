// Package gormdb implements store.Store over a relational database via gorm.
package gormdb

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yourusername/invoice-dashboard/models"
	"github.com/yourusername/invoice-dashboard/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

// Migrate creates or updates the tables backing the store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{}, &models.Invoice{}, &models.User{}, &models.Revenue{})
}

func (s *GormStore) Revenue(ctx context.Context) ([]models.Revenue, error) {
	revenue := []models.Revenue{}
	if err := s.db.WithContext(ctx).Order("seq").Find(&revenue).Error; err != nil {
		return nil, queryError("revenue", err)
	}
	return revenue, nil
}

func (s *GormStore) Invoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	if err := s.db.WithContext(ctx).Order("seq, id").Find(&invoices).Error; err != nil {
		return nil, queryError("invoices", err)
	}
	return invoices, nil
}

func (s *GormStore) Customers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := s.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, queryError("customers", err)
	}
	return customers, nil
}

func (s *GormStore) Users(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, queryError("users", err)
	}
	return users, nil
}

const filteredCustomersQuery = `SELECT
	customers.id,
	customers.name,
	customers.email,
	customers.image_url,
	COUNT(invoices.id) AS total_invoices,
	CAST(COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS BIGINT) AS total_pending,
	CAST(COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS BIGINT) AS total_paid
FROM customers
LEFT JOIN invoices ON customers.id = invoices.customer_id
WHERE LOWER(customers.name) LIKE ? ESCAPE '\' OR LOWER(customers.email) LIKE ? ESCAPE '\'
GROUP BY customers.id, customers.name, customers.email, customers.image_url
ORDER BY customers.name ASC, customers.id ASC`

func (s *GormStore) FilteredCustomers(ctx context.Context, query string) ([]models.CustomerTotals, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	rows := []models.CustomerTotals{}
	if err := s.db.WithContext(ctx).Raw(filteredCustomersQuery, pattern, pattern).Scan(&rows).Error; err != nil {
		return nil, queryError("customer totals", err)
	}

	// ORDER BY follows the database collation; settle on byte order so
	// both backends list customers the same way.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, nil
}

// Seed copies every record from src into the database. Rows whose primary
// key already exists are left untouched.
func (s *GormStore) Seed(ctx context.Context, src store.Store) error {
	revenue, err := src.Revenue(ctx)
	if err != nil {
		return err
	}
	for i := range revenue {
		revenue[i].Seq = i
	}
	customers, err := src.Customers(ctx)
	if err != nil {
		return err
	}
	invoices, err := src.Invoices(ctx)
	if err != nil {
		return err
	}
	for i := range invoices {
		invoices[i].Seq = i
	}
	users, err := src.Users(ctx)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insert(tx, revenue); err != nil {
			return fmt.Errorf("seed revenue: %w", err)
		}
		if err := insert(tx, customers); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		if err := insert(tx, invoices); err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}
		if err := insert(tx, users); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		return nil
	})
}

func insert[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&rows, 100).Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func queryError(what string, err error) error {
	return fmt.Errorf("%w: query %s: %w", store.ErrIO, what, err)
}

var _ store.Store = (*GormStore)(nil)
