// internal/domain/book/service.go
package book

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/cafe-gateway/internal/infrastructure/upstream"
)

// Service handles book catalog business logic
type Service struct {
	api    *upstream.Client
	logger *logrus.Logger
}

// NewService creates a new book service
func NewService(api *upstream.Client, logger *logrus.Logger) *Service {
	return &Service{
		api:    api,
		logger: logger,
	}
}

// List retrieves all books
func (s *Service) List(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := s.api.Get(ctx, "/books", &books); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// Get retrieves a single book by id
func (s *Service) Get(ctx context.Context, bookID int) (*Book, error) {
	var b Book
	if err := s.api.Get(ctx, fmt.Sprintf("/books/%d", bookID), &b); err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", bookID, err)
	}
	return &b, nil
}

// Create creates a new book in the upstream catalog
func (s *Service) Create(ctx context.Context, req *CreateBookRequest) (*Book, error) {
	var created Book
	if err := s.api.Post(ctx, "/books", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"book_id": created.ID,
		"title":   created.Title,
	}).Info("Book created")

	return &created, nil
}
