package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/library-service/cmd/library/jsonfile"
	"github.com/library-service/cmd/library/library"
	"github.com/library-service/cmd/library/postgres"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	err := run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	repo, closeStore, err := openStore()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer closeStore()

	fineService := library.NewFineService(repo)
	loanService := library.NewLoanService(repo, fineService)
	catalogService := library.NewCatalogService(repo)
	memberService := library.NewMemberService(repo)

	root := newRootCmd(catalogService, memberService, loanService, fineService)
	return root.Execute()
}

// openStore picks the backend from the environment: DATABASE_URL selects
// postgres, otherwise records live as JSON files under LIBRARY_DATA_DIR.
func openStore() (library.Repository, func(), error) {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		dbObject, err := postgres.ConnectDb(connStr)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting with db: %w", err)
		}

		store := postgres.NewStore(dbObject)
		if path := os.Getenv("DATABASE_MIGRATIONS_PATH"); path != "" {
			err = postgres.MigrationUp(store, path)
			if err != nil && !errors.Is(err, migrate.ErrNoChange) {
				dbObject.Close()
				return nil, nil, fmt.Errorf("migrating: %w", err)
			}
		}
		return store, func() { dbObject.Close() }, nil
	}

	dir := os.Getenv("LIBRARY_DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	store, err := jsonfile.NewStore(dir)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}
