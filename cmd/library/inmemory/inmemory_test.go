package inmemory_test

import (
	"context"
	"testing"

	"github.com/library-service/cmd/library/inmemory"
	"github.com/library-service/cmd/library/library"
	"github.com/matryer/is"
)

var ctx = context.Background()

func TestCollectionsRoundTrip(t *testing.T) {
	is := is.New(t)
	store, err := inmemory.NewInMemoryStore()
	is.NoErr(err)

	empty, err := store.LoadUsers(ctx)
	is.NoErr(err)
	is.Equal(len(empty), 0)

	users := []library.User{
		{ID: 1, FirstName: "Elena", LastName: "Quiroga", Email: "elena@example.com", Active: true},
		{ID: 2, FirstName: "Mario", LastName: "Benedetti", Email: "mario@example.com", Active: true},
	}
	is.NoErr(store.SaveUsers(ctx, users))

	loaded, err := store.LoadUsers(ctx)
	is.NoErr(err)
	is.Equal(loaded, users)
}

func TestSaveReplacesTheCollection(t *testing.T) {
	is := is.New(t)
	store, err := inmemory.NewInMemoryStore()
	is.NoErr(err)

	is.NoErr(store.SaveBooks(ctx, []library.Book{
		{ID: 1, Title: "Rayuela", Active: true},
		{ID: 2, Title: "Ficciones", Active: true},
	}))
	is.NoErr(store.SaveBooks(ctx, []library.Book{
		{ID: 2, Title: "Ficciones", Active: true},
	}))

	loaded, err := store.LoadBooks(ctx)
	is.NoErr(err)
	is.Equal(len(loaded), 1)
	is.Equal(loaded[0].ID, 2)
}

func TestCollectionsAreIndependent(t *testing.T) {
	is := is.New(t)
	store, err := inmemory.NewInMemoryStore()
	is.NoErr(err)

	is.NoErr(store.SaveAuthors(ctx, []library.Author{{ID: 1, FirstName: "Julio", LastName: "Cortázar"}}))

	categories, err := store.LoadCategories(ctx)
	is.NoErr(err)
	is.Equal(len(categories), 0)
}

func TestNextID(t *testing.T) {
	is := is.New(t)
	store, err := inmemory.NewInMemoryStore()
	is.NoErr(err)

	for want := 1; want <= 3; want++ {
		got, err := store.NextID(ctx, "books")
		is.NoErr(err)
		is.Equal(got, want)
	}

	// each counter advances on its own
	got, err := store.NextID(ctx, "fines")
	is.NoErr(err)
	is.Equal(got, 1)

	got, err = store.NextID(ctx, "books")
	is.NoErr(err)
	is.Equal(got, 4)
}
