package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/library-service/cmd/library/library"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/lib/pq"

	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Store keeps each collection in its own table, one row per record. Saves
// follow the whole-collection contract: every record in the slice is
// upserted and rows absent from it are deleted, so the visible result
// matches a flat-file overwrite while using indexed statements.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

/* Connects to the database through a connection string and returns a valid
*sql.DB on success. */
func ConnectDb(connStr string) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to db, opening: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to db, pinging: %w", err)
	}

	log.Println("Successfully connected!")
	return sqlDB, nil
}

func MigrationUp(store *Store, path string) error {
	driver, err := migratepg.WithInstance(store.db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", path),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}

	if err := m.Up(); err != nil {
		return fmt.Errorf("migrating up: %w", err)
	}
	return nil
}

func (store *Store) LoadAuthors(ctx context.Context) ([]library.Author, error) {
	rows, err := store.db.QueryContext(ctx, `
	SELECT id, first_name, last_name, nationality
	FROM authors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading authors: %w", err)
	}
	defer rows.Close()

	authors := []library.Author{}
	for rows.Next() {
		var a library.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Nationality); err != nil {
			return nil, fmt.Errorf("loading authors: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading authors: %w", err)
	}
	return authors, nil
}

func (store *Store) SaveAuthors(ctx context.Context, authors []library.Author) error {
	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		_, err := store.db.ExecContext(ctx, `
		INSERT INTO authors (id, first_name, last_name, nationality)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			nationality = EXCLUDED.nationality`,
			a.ID, a.FirstName, a.LastName, a.Nationality)
		if err != nil {
			return fmt.Errorf("saving authors: %w", err)
		}
		ids = append(ids, int64(a.ID))
	}

	if _, err := store.db.ExecContext(ctx,
		`DELETE FROM authors WHERE NOT (id = ANY($1))`, pq.Array(ids)); err != nil {
		return fmt.Errorf("saving authors: %w", err)
	}
	return nil
}

func (store *Store) LoadCategories(ctx context.Context) ([]library.Category, error) {
	rows, err := store.db.QueryContext(ctx, `
	SELECT id, name, description
	FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	defer rows.Close()

	categories := []library.Category{}
	for rows.Next() {
		var c library.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("loading categories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	return categories, nil
}

func (store *Store) SaveCategories(ctx context.Context, categories []library.Category) error {
	ids := make([]int64, 0, len(categories))
	for _, c := range categories {
		_, err := store.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description`,
			c.ID, c.Name, c.Description)
		if err != nil {
			return fmt.Errorf("saving categories: %w", err)
		}
		ids = append(ids, int64(c.ID))
	}

	if _, err := store.db.ExecContext(ctx,
		`DELETE FROM categories WHERE NOT (id = ANY($1))`, pq.Array(ids)); err != nil {
		return fmt.Errorf("saving categories: %w", err)
	}
	return nil
}

func (store *Store) LoadBooks(ctx context.Context) ([]library.Book, error) {
	rows, err := store.db.QueryContext(ctx, `
	SELECT id, title, isbn, author_id, category_id, published_year, total_copies, available_copies, active
	FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading books: %w", err)
	}
	defer rows.Close()

	books := []library.Book{}
	for rows.Next() {
		var b library.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.AuthorID, &b.CategoryID,
			&b.PublishedYear, &b.TotalCopies, &b.AvailableCopies, &b.Active); err != nil {
			return nil, fmt.Errorf("loading books: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading books: %w", err)
	}
	return books, nil
}

func (store *Store) SaveBooks(ctx context.Context, books []library.Book) error {
	ids := make([]int64, 0, len(books))
	for _, b := range books {
		_, err := store.db.ExecContext(ctx, `
		INSERT INTO books (id, title, isbn, author_id, category_id, published_year, total_copies, available_copies, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			isbn = EXCLUDED.isbn,
			author_id = EXCLUDED.author_id,
			category_id = EXCLUDED.category_id,
			published_year = EXCLUDED.published_year,
			total_copies = EXCLUDED.total_copies,
			available_copies = EXCLUDED.available_copies,
			active = EXCLUDED.active`,
			b.ID, b.Title, b.ISBN, b.AuthorID, b.CategoryID,
			b.PublishedYear, b.TotalCopies, b.AvailableCopies, b.Active)
		if err != nil {
			return fmt.Errorf("saving books: %w", err)
		}
		ids = append(ids, int64(b.ID))
	}

	if _, err := store.db.ExecContext(ctx,
		`DELETE FROM books WHERE NOT (id = ANY($1))`, pq.Array(ids)); err != nil {
		return fmt.Errorf("saving books: %w", err)
	}
	return nil
}

func (store *Store) LoadUsers(ctx context.Context) ([]library.User, error) {
	rows, err := store.db.QueryContext(ctx, `
	SELECT id, first_name, last_name, email, phone, address, active, pending_fines
	FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	defer rows.Close()

	users := []library.User{}
	for rows.Next() {
		var u library.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email,
			&u.Phone, &u.Address, &u.Active, &u.PendingFines); err != nil {
			return nil, fmt.Errorf("loading users: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	return users, nil
}

func (store *Store) SaveUsers(ctx context.Context, users []library.User) error {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		_, err := store.db.ExecContext(ctx, `
		INSERT INTO users (id, first_name, last_name, email, phone, address, active, pending_fines)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			active = EXCLUDED.active,
			pending_fines = EXCLUDED.pending_fines`,
			u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.Address, u.Active, u.PendingFines)
		if err != nil {
			return fmt.Errorf("saving users: %w", err)
		}
		ids = append(ids, int64(u.ID))
	}

	if _, err := store.db.ExecContext(ctx,
		`DELETE FROM users WHERE NOT (id = ANY($1))`, pq.Array(ids)); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}
	return nil
}

func (store *Store) LoadLoans(ctx context.Context) ([]library.Loan, error) {
	rows, err := store.db.QueryContext(ctx, `
	SELECT id, user_id, book_id, loan_date, due_date, return_date, status, fine_generated
	FROM loans ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading loans: %w", err)
	}
	defer rows.Close()

	loans := []library.Loan{}
	for rows.Next() {
		var l library.Loan
		var loanDate, dueDate time.Time
		var returnDate sql.NullTime
		if err := rows.Scan(&l.ID, &l.UserID, &l.BookID, &loanDate, &dueDate,
			&returnDate, &l.Status, &l.FineGenerated); err != nil {
			return nil, fmt.Errorf("loading loans: %w", err)
		}
		l.LoanDate = library.NewDate(loanDate)
		l.DueDate = library.NewDate(dueDate)
		if returnDate.Valid {
			d := library.NewDate(returnDate.Time)
			l.ReturnDate = &d
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading loans: %w", err)
	}
	return loans, nil
}

func (store *Store) SaveLoans(ctx context.Context, loans []library.Loan) error {
	ids := make([]int64, 0, len(loans))
	for _, l := range loans {
		_, err := store.db.ExecContext(ctx, `
		INSERT INTO loans (id, user_id, book_id, loan_date, due_date, return_date, status, fine_generated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			book_id = EXCLUDED.book_id,
			loan_date = EXCLUDED.loan_date,
			due_date = EXCLUDED.due_date,
			return_date = EXCLUDED.return_date,
			status = EXCLUDED.status,
			fine_generated = EXCLUDED.fine_generated`,
			l.ID, l.UserID, l.BookID, l.LoanDate.Time, l.DueDate.Time,
			nullDate(l.ReturnDate), l.Status, l.FineGenerated)
		if err != nil {
			return fmt.Errorf("saving loans: %w", err)
		}
		ids = append(ids, int64(l.ID))
	}

	if _, err := store.db.ExecContext(ctx,
		`DELETE FROM loans WHERE NOT (id = ANY($1))`, pq.Array(ids)); err != nil {
		return fmt.Errorf("saving loans: %w", err)
	}
	return nil
}

func (store *Store) LoadFines(ctx context.Context) ([]library.Fine, error) {
	rows, err := store.db.QueryContext(ctx, `
	SELECT id, user_id, amount, concept, issued_date, payment_date, status
	FROM fines ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading fines: %w", err)
	}
	defer rows.Close()

	fines := []library.Fine{}
	for rows.Next() {
		var f library.Fine
		var issuedDate time.Time
		var paymentDate sql.NullTime
		if err := rows.Scan(&f.ID, &f.UserID, &f.Amount, &f.Concept,
			&issuedDate, &paymentDate, &f.Status); err != nil {
			return nil, fmt.Errorf("loading fines: %w", err)
		}
		f.IssuedDate = library.NewDate(issuedDate)
		if paymentDate.Valid {
			d := library.NewDate(paymentDate.Time)
			f.PaymentDate = &d
		}
		fines = append(fines, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading fines: %w", err)
	}
	return fines, nil
}

func (store *Store) SaveFines(ctx context.Context, fines []library.Fine) error {
	ids := make([]int64, 0, len(fines))
	for _, f := range fines {
		_, err := store.db.ExecContext(ctx, `
		INSERT INTO fines (id, user_id, amount, concept, issued_date, payment_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			amount = EXCLUDED.amount,
			concept = EXCLUDED.concept,
			issued_date = EXCLUDED.issued_date,
			payment_date = EXCLUDED.payment_date,
			status = EXCLUDED.status`,
			f.ID, f.UserID, f.Amount, f.Concept, f.IssuedDate.Time,
			nullDate(f.PaymentDate), f.Status)
		if err != nil {
			return fmt.Errorf("saving fines: %w", err)
		}
		ids = append(ids, int64(f.ID))
	}

	if _, err := store.db.ExecContext(ctx,
		`DELETE FROM fines WHERE NOT (id = ANY($1))`, pq.Array(ids)); err != nil {
		return fmt.Errorf("saving fines: %w", err)
	}
	return nil
}

/* NextID advances the named counter in a single statement, so it stays
strictly increasing even though the rest of the store does not coordinate
writers. */
func (store *Store) NextID(ctx context.Context, counter string) (int, error) {
	row := store.db.QueryRowContext(ctx, `
	INSERT INTO counters (name, value) VALUES ($1, 2)
	ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
	RETURNING value - 1`, counter)

	var id int
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("advancing counter %s: %w", counter, err)
	}
	return id, nil
}

func nullDate(d *library.Date) sql.NullTime {
	if d == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}
