package inmemory

import (
	"context"
	"fmt"

	"github.com/library-service/cmd/library/library"

	"github.com/hashicorp/go-memdb"
)

const (
	tableAuthors    = "authors"
	tableCategories = "categories"
	tableBooks      = "books"
	tableUsers      = "users"
	tableLoans      = "loans"
	tableFines      = "fines"
	tableCounters   = "counters"
)

// InMemoryStore keeps every collection in a go-memdb database. It exists for
// tests and throwaway runs; it honors the same whole-collection overwrite
// contract as the file-backed store, nothing survives the process.
type InMemoryStore struct {
	db *memdb.MemDB
}

func NewInMemoryStore() (*InMemoryStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableAuthors:    collectionTable(tableAuthors),
			tableCategories: collectionTable(tableCategories),
			tableBooks:      collectionTable(tableBooks),
			tableUsers:      collectionTable(tableUsers),
			tableLoans:      collectionTable(tableLoans),
			tableFines:      collectionTable(tableFines),
			tableCounters: {
				Name: tableCounters,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("initializing in-memory store: %w", err)
	}
	return &InMemoryStore{db: db}, nil
}

func collectionTable(name string) *memdb.TableSchema {
	return &memdb.TableSchema{
		Name: name,
		Indexes: map[string]*memdb.IndexSchema{
			"id": {
				Name:    "id",
				Unique:  true,
				Indexer: &memdb.IntFieldIndex{Field: "ID"},
			},
		},
	}
}

type counterRow struct {
	Name  string
	Value int
}

func loadAll[T any](store *InMemoryStore, table string) ([]T, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(table, "id")
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", table, err)
	}

	// The id index iterates in ascending order, preserving insertion order
	// for counter-issued ids.
	items := []T{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		items = append(items, obj.(T))
	}
	return items, nil
}

func saveAll[T any](store *InMemoryStore, table string, items []T) error {
	txn := store.db.Txn(true)

	// Full overwrite, mirroring the flat-file contract.
	if _, err := txn.DeleteAll(table, "id"); err != nil {
		txn.Abort()
		return fmt.Errorf("saving %s: %w", table, err)
	}
	for _, item := range items {
		if err := txn.Insert(table, item); err != nil {
			txn.Abort()
			return fmt.Errorf("saving %s: %w", table, err)
		}
	}

	txn.Commit()
	return nil
}

func (store *InMemoryStore) LoadAuthors(_ context.Context) ([]library.Author, error) {
	return loadAll[library.Author](store, tableAuthors)
}

func (store *InMemoryStore) SaveAuthors(_ context.Context, authors []library.Author) error {
	return saveAll(store, tableAuthors, authors)
}

func (store *InMemoryStore) LoadCategories(_ context.Context) ([]library.Category, error) {
	return loadAll[library.Category](store, tableCategories)
}

func (store *InMemoryStore) SaveCategories(_ context.Context, categories []library.Category) error {
	return saveAll(store, tableCategories, categories)
}

func (store *InMemoryStore) LoadBooks(_ context.Context) ([]library.Book, error) {
	return loadAll[library.Book](store, tableBooks)
}

func (store *InMemoryStore) SaveBooks(_ context.Context, books []library.Book) error {
	return saveAll(store, tableBooks, books)
}

func (store *InMemoryStore) LoadUsers(_ context.Context) ([]library.User, error) {
	return loadAll[library.User](store, tableUsers)
}

func (store *InMemoryStore) SaveUsers(_ context.Context, users []library.User) error {
	return saveAll(store, tableUsers, users)
}

func (store *InMemoryStore) LoadLoans(_ context.Context) ([]library.Loan, error) {
	return loadAll[library.Loan](store, tableLoans)
}

func (store *InMemoryStore) SaveLoans(_ context.Context, loans []library.Loan) error {
	return saveAll(store, tableLoans, loans)
}

func (store *InMemoryStore) LoadFines(_ context.Context) ([]library.Fine, error) {
	return loadAll[library.Fine](store, tableFines)
}

func (store *InMemoryStore) SaveFines(_ context.Context, fines []library.Fine) error {
	return saveAll(store, tableFines, fines)
}

func (store *InMemoryStore) NextID(_ context.Context, counter string) (int, error) {
	txn := store.db.Txn(true)

	raw, err := txn.First(tableCounters, "id", counter)
	if err != nil {
		txn.Abort()
		return 0, fmt.Errorf("reading counter %s: %w", counter, err)
	}

	value := 1
	if raw != nil {
		value = raw.(counterRow).Value
	}

	if err := txn.Insert(tableCounters, counterRow{Name: counter, Value: value + 1}); err != nil {
		txn.Abort()
		return 0, fmt.Errorf("advancing counter %s: %w", counter, err)
	}

	txn.Commit()
	return value, nil
}
