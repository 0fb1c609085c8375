package library

import (
	"context"
	"fmt"
)

type Book struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	AuthorID        int    `json:"author_id"`
	CategoryID      int    `json:"category_id"`
	PublishedYear   int    `json:"published_year"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
	Active          bool   `json:"active"`
}

// CatalogService manages the catalog records: books, authors and categories.
type CatalogService struct {
	repo Repository
}

func NewCatalogService(repo Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

type CreateBookRequest struct {
	Title         string
	ISBN          string
	AuthorID      int
	CategoryID    int
	PublishedYear int
	TotalCopies   int
}

// UpdateBookRequest carries the fields to change; nil fields keep the
// current value.
type UpdateBookRequest struct {
	ID            int
	Title         *string
	ISBN          *string
	PublishedYear *int
	TotalCopies   *int
}

/* Stores a new book. Books start active with every copy available. */
func (s *CatalogService) CreateBook(ctx context.Context, req CreateBookRequest) (Book, error) {
	id, err := s.repo.NextID(ctx, counterBooks)
	if err != nil {
		return Book{}, fmt.Errorf("creating book: %w", err)
	}

	newBook := Book{
		ID:              id,
		Title:           req.Title,
		ISBN:            req.ISBN,
		AuthorID:        req.AuthorID,
		CategoryID:      req.CategoryID,
		PublishedYear:   req.PublishedYear,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.TotalCopies,
		Active:          true,
	}

	books, err := s.repo.LoadBooks(ctx)
	if err != nil {
		return Book{}, fmt.Errorf("creating book: %w", err)
	}
	books = append(books, newBook)
	if err := s.repo.SaveBooks(ctx, books); err != nil {
		return Book{}, fmt.Errorf("creating book: %w", err)
	}

	return newBook, nil
}

func (s *CatalogService) ListBooks(ctx context.Context) ([]Book, error) {
	return s.repo.LoadBooks(ctx)
}

func (s *CatalogService) GetBook(ctx context.Context, id int) (Book, error) {
	books, err := s.repo.LoadBooks(ctx)
	if err != nil {
		return Book{}, fmt.Errorf("searching book by ID: %w", err)
	}

	found, ok := FindByID(books, id, func(b Book) int { return b.ID })
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return found, nil
}

/* Updates the changed fields of a book. Changing the total number of copies
moves the available count by the same difference, so copies out on loan stay
accounted for. */
func (s *CatalogService) UpdateBook(ctx context.Context, req UpdateBookRequest) (Book, error) {
	books, err := s.repo.LoadBooks(ctx)
	if err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}

	idx := indexByID(books, req.ID, func(b Book) int { return b.ID })
	if idx < 0 {
		return Book{}, ErrBookNotFound
	}

	if req.Title != nil {
		books[idx].Title = *req.Title
	}
	if req.ISBN != nil {
		books[idx].ISBN = *req.ISBN
	}
	if req.PublishedYear != nil {
		books[idx].PublishedYear = *req.PublishedYear
	}
	if req.TotalCopies != nil {
		diff := *req.TotalCopies - books[idx].TotalCopies
		books[idx].TotalCopies = *req.TotalCopies
		books[idx].AvailableCopies += diff
	}

	if err := s.repo.SaveBooks(ctx, books); err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}
	return books[idx], nil
}

// DeactivateBook soft-deletes a book. The record stays on file so past
// loans keep a valid reference.
func (s *CatalogService) DeactivateBook(ctx context.Context, id int) (Book, error) {
	books, err := s.repo.LoadBooks(ctx)
	if err != nil {
		return Book{}, fmt.Errorf("deactivating book: %w", err)
	}

	idx := indexByID(books, id, func(b Book) int { return b.ID })
	if idx < 0 {
		return Book{}, ErrBookNotFound
	}
	books[idx].Active = false

	if err := s.repo.SaveBooks(ctx, books); err != nil {
		return Book{}, fmt.Errorf("deactivating book: %w", err)
	}
	return books[idx], nil
}

func indexByID[T any](items []T, id int, idOf func(T) int) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}
