package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/library-service/cmd/library/jsonfile"
	"github.com/library-service/cmd/library/library"
)

var ctx = context.Background()

func newTestStore(t *testing.T) (*jsonfile.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := jsonfile.NewStore(dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return store, dir
}

func TestLoadMissingCollection(t *testing.T) {
	store, _ := newTestStore(t)

	books, err := store.LoadBooks(ctx)
	if err != nil {
		t.Fatalf("loading from empty dir: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected no books, got %d", len(books))
	}
}

func TestSaveAndLoadAuthors(t *testing.T) {
	store, dir := newTestStore(t)

	authors := []library.Author{
		{ID: 1, FirstName: "Gabriel", LastName: "García Márquez", Nationality: "Colombiana"},
		{ID: 2, FirstName: "Julio", LastName: "Cortázar", Nationality: "Argentina"},
	}
	if err := store.SaveAuthors(ctx, authors); err != nil {
		t.Fatalf("saving authors: %v", err)
	}

	loaded, err := store.LoadAuthors(ctx)
	if err != nil {
		t.Fatalf("loading authors: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(loaded))
	}
	if loaded[0] != authors[0] || loaded[1] != authors[1] {
		t.Fatalf("loaded authors differ: %+v", loaded)
	}

	// accented text must land in the file as written, not escaped
	raw, err := os.ReadFile(filepath.Join(dir, "authors.json"))
	if err != nil {
		t.Fatalf("reading authors.json: %v", err)
	}
	if !strings.Contains(string(raw), "García Márquez") {
		t.Fatalf("authors.json does not contain the raw accented name:\n%s", raw)
	}
}

func TestSaveOverwritesCollection(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.SaveCategories(ctx, []library.Category{
		{ID: 1, Name: "Novela"},
		{ID: 2, Name: "Poesía"},
	}); err != nil {
		t.Fatalf("saving categories: %v", err)
	}
	if err := store.SaveCategories(ctx, []library.Category{{ID: 2, Name: "Poesía"}}); err != nil {
		t.Fatalf("overwriting categories: %v", err)
	}

	loaded, err := store.LoadCategories(ctx)
	if err != nil {
		t.Fatalf("loading categories: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != 2 {
		t.Fatalf("expected only category 2 to remain, got %+v", loaded)
	}
}

func TestLoanDatesOnDisk(t *testing.T) {
	store, dir := newTestStore(t)

	loanDate, err := library.ParseDate("15/03/2024")
	if err != nil {
		t.Fatalf("parsing date: %v", err)
	}
	loan := library.Loan{
		ID: 1, UserID: 1, BookID: 1,
		LoanDate: loanDate, DueDate: loanDate.AddDays(14),
		Status: library.LoanStatusActive,
	}
	if err := store.SaveLoans(ctx, []library.Loan{loan}); err != nil {
		t.Fatalf("saving loans: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "loans.json"))
	if err != nil {
		t.Fatalf("reading loans.json: %v", err)
	}
	for _, want := range []string{`"15/03/2024"`, `"29/03/2024"`, `"return_date": null`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("loans.json missing %s:\n%s", want, raw)
		}
	}

	loaded, err := store.LoadLoans(ctx)
	if err != nil {
		t.Fatalf("loading loans: %v", err)
	}
	if loaded[0].DueDate.String() != "29/03/2024" {
		t.Fatalf("expected due date 29/03/2024, got %s", loaded[0].DueDate)
	}
	if loaded[0].ReturnDate != nil {
		t.Fatalf("expected nil return date, got %v", loaded[0].ReturnDate)
	}
}

func TestNextID(t *testing.T) {
	store, dir := newTestStore(t)

	for want := 1; want <= 3; want++ {
		got, err := store.NextID(ctx, "books")
		if err != nil {
			t.Fatalf("next id: %v", err)
		}
		if got != want {
			t.Fatalf("expected id %d, got %d", want, got)
		}
	}

	// independent counters do not interfere
	got, err := store.NextID(ctx, "loans")
	if err != nil {
		t.Fatalf("next id: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected loans counter to start at 1, got %d", got)
	}

	// the increment survives reopening the store
	reopened, err := jsonfile.NewStore(dir)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	got, err = reopened.NextID(ctx, "books")
	if err != nil {
		t.Fatalf("next id after reopen: %v", err)
	}
	if got != 4 {
		t.Fatalf("expected id 4 after reopen, got %d", got)
	}
}
