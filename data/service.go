// Package data answers the dashboard's read queries on top of a store.Store.
package data

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/invoice-dashboard/store"
)

// ItemsPerPage is the page size of the invoice search.
const ItemsPerPage = 6

type Service struct {
	store store.Store
	log   logrus.FieldLogger
}

func NewService(s store.Store, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		store: s,
		log:   log,
	}
}

func (s *Service) fail(ctx context.Context, op, message string, err error) error {
	entry := s.log.WithError(err).WithField("op", op)
	if id, ok := RequestIDFromContext(ctx); ok {
		entry = entry.WithField("request_id", id)
	}
	entry.Error("database error")

	return &DataAccessError{Op: op, Message: message, Err: err}
}

type requestIDKey struct{}

// WithRequestID attaches a request id that failures are logged with.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
