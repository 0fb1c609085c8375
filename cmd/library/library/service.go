package library

import (
	"context"
)

// Repository is the record store every service depends on. Collections are
// loaded and saved whole: each operation is a short read-modify-write cycle
// against the full list of records of one type, and a save is a complete
// overwrite. Implementations are not expected to coordinate concurrent
// access; a single exclusive process is assumed.
type Repository interface {
	LoadAuthors(ctx context.Context) ([]Author, error)
	SaveAuthors(ctx context.Context, authors []Author) error
	LoadCategories(ctx context.Context) ([]Category, error)
	SaveCategories(ctx context.Context, categories []Category) error
	LoadBooks(ctx context.Context) ([]Book, error)
	SaveBooks(ctx context.Context, books []Book) error
	LoadUsers(ctx context.Context) ([]User, error)
	SaveUsers(ctx context.Context, users []User) error
	LoadLoans(ctx context.Context) ([]Loan, error)
	SaveLoans(ctx context.Context, loans []Loan) error
	LoadFines(ctx context.Context) ([]Fine, error)
	SaveFines(ctx context.Context, fines []Fine) error

	// NextID returns the next value of the named counter and persists the
	// increment. Counters start at 1 and are strictly increasing across
	// restarts. Counter names are identities of their own, separate from
	// the collection names storage backends use, even where they coincide.
	NextID(ctx context.Context, counter string) (int, error)
}

const (
	counterAuthors    = "authors"
	counterCategories = "categories"
	counterBooks      = "books"
	counterUsers      = "users"
	counterLoans      = "loans"
	counterFines      = "fines"
)

// FindByID returns the first element whose id matches.
func FindByID[T any](items []T, id int, idOf func(T) int) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// DeleteByID removes the first element whose id matches and reports whether
// anything was removed.
func DeleteByID[T any](items []T, id int, idOf func(T) int) ([]T, bool) {
	for i, item := range items {
		if idOf(item) == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}
