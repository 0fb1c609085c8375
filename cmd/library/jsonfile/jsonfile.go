package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/library-service/cmd/library/library"

	jsoniter "github.com/json-iterator/go"
)

// Indented output without HTML escaping, so accented text lands in the
// files as written.
var json = jsoniter.Config{IndentionStep: 2, SortMapKeys: true}.Froze()

// Store persists each collection as one JSON array file under dir, and each
// id counter as a single-object file next to them. Every save is a full
// overwrite of the collection file; the layout assumes a single exclusive
// process, and concurrent writers would silently lose data.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func loadCollection[T any](s *Store, name string) ([]T, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name+".json"))
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}

	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return items, nil
}

func saveCollection[T any](s *Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name+".json"), data, 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	return nil
}

func (s *Store) LoadAuthors(_ context.Context) ([]library.Author, error) {
	return loadCollection[library.Author](s, "authors")
}

func (s *Store) SaveAuthors(_ context.Context, authors []library.Author) error {
	return saveCollection(s, "authors", authors)
}

func (s *Store) LoadCategories(_ context.Context) ([]library.Category, error) {
	return loadCollection[library.Category](s, "categories")
}

func (s *Store) SaveCategories(_ context.Context, categories []library.Category) error {
	return saveCollection(s, "categories", categories)
}

func (s *Store) LoadBooks(_ context.Context) ([]library.Book, error) {
	return loadCollection[library.Book](s, "books")
}

func (s *Store) SaveBooks(_ context.Context, books []library.Book) error {
	return saveCollection(s, "books", books)
}

func (s *Store) LoadUsers(_ context.Context) ([]library.User, error) {
	return loadCollection[library.User](s, "users")
}

func (s *Store) SaveUsers(_ context.Context, users []library.User) error {
	return saveCollection(s, "users", users)
}

func (s *Store) LoadLoans(_ context.Context) ([]library.Loan, error) {
	return loadCollection[library.Loan](s, "loans")
}

func (s *Store) SaveLoans(_ context.Context, loans []library.Loan) error {
	return saveCollection(s, "loans", loans)
}

func (s *Store) LoadFines(_ context.Context) ([]library.Fine, error) {
	return loadCollection[library.Fine](s, "fines")
}

func (s *Store) SaveFines(_ context.Context, fines []library.Fine) error {
	return saveCollection(s, "fines", fines)
}

type counterDoc struct {
	Counter int `json:"counter"`
}

/* NextID hands out the current value of the named counter and persists the
increment. A counter file that does not exist yet starts at 1. */
func (s *Store) NextID(_ context.Context, counter string) (int, error) {
	path := filepath.Join(s.dir, "counter_"+counter+".json")

	doc := counterDoc{Counter: 1}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First use of the counter.
	case err != nil:
		return 0, fmt.Errorf("loading counter %s: %w", counter, err)
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return 0, fmt.Errorf("loading counter %s: %w", counter, err)
		}
	}

	next, err := json.Marshal(counterDoc{Counter: doc.Counter + 1})
	if err != nil {
		return 0, fmt.Errorf("saving counter %s: %w", counter, err)
	}
	if err := os.WriteFile(path, next, 0o644); err != nil {
		return 0, fmt.Errorf("saving counter %s: %w", counter, err)
	}

	return doc.Counter, nil
}
