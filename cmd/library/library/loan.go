package library

import (
	"context"
	"fmt"
	"time"
)

// LoanPeriodDays is the lending period: the due date is the loan date plus
// this many calendar days.
const LoanPeriodDays = 14

// DailyLateFee is the fine charged per whole day a return is late.
const DailyLateFee = 1.00

const (
	LoanStatusActive   = "active"
	LoanStatusReturned = "returned"
	// LoanStatusOverdue is never written to a loan record. Overdue-ness is
	// derived at read time from the status and due date; see Loan.IsOverdue.
	LoanStatusOverdue = "overdue"
)

type Loan struct {
	ID            int    `json:"id"`
	UserID        int    `json:"user_id"`
	BookID        int    `json:"book_id"`
	LoanDate      Date   `json:"loan_date"`
	DueDate       Date   `json:"due_date"`
	ReturnDate    *Date  `json:"return_date"`
	Status        string `json:"status"`
	FineGenerated bool   `json:"fine_generated"`
}

// IsOverdue reports whether the loan is still open and at least one whole
// day past its due date.
func (l Loan) IsOverdue(now time.Time) bool {
	return l.Status == LoanStatusActive && l.DueDate.DaysOverdue(now) > 0
}

// LoanService is the transactional core of the lending side: it opens and
// closes loans, keeps book availability in step, and hands late returns to
// the fine service.
type LoanService struct {
	repo  Repository
	fines *FineService
}

func NewLoanService(repo Repository, fines *FineService) *LoanService {
	return &LoanService{repo: repo, fines: fines}
}

/* Opens a loan of one copy of a book to a user. The preconditions run in a
fixed order and the first failure wins: the user must exist and be active,
owe no pending fines, the book must exist and be active, and a copy must be
available. On success the book collection is persisted before the loan is
appended; the two writes are independent, so a crash in between leaves a
decremented copy count with no matching loan record. */
func (s *LoanService) CreateLoan(ctx context.Context, userID, bookID int) (Loan, error) {
	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return Loan{}, fmt.Errorf("creating loan: %w", err)
	}
	user, ok := FindByID(users, userID, func(u User) int { return u.ID })
	if !ok || !user.Active {
		return Loan{}, ErrUserNotEligible
	}
	if user.PendingFines > 0 {
		return Loan{}, ErrUserHasPendingFines
	}

	books, err := s.repo.LoadBooks(ctx)
	if err != nil {
		return Loan{}, fmt.Errorf("creating loan: %w", err)
	}
	idx := indexByID(books, bookID, func(b Book) int { return b.ID })
	if idx < 0 || !books[idx].Active {
		return Loan{}, ErrBookNotAvailable
	}
	if books[idx].AvailableCopies <= 0 {
		return Loan{}, ErrNoCopiesAvailable
	}

	id, err := s.repo.NextID(ctx, counterLoans)
	if err != nil {
		return Loan{}, fmt.Errorf("creating loan: %w", err)
	}

	today := Today()
	newLoan := Loan{
		ID:       id,
		UserID:   userID,
		BookID:   bookID,
		LoanDate: today,
		DueDate:  today.AddDays(LoanPeriodDays),
		Status:   LoanStatusActive,
	}

	books[idx].AvailableCopies--
	if err := s.repo.SaveBooks(ctx, books); err != nil {
		return Loan{}, fmt.Errorf("creating loan: %w", err)
	}

	loans, err := s.repo.LoadLoans(ctx)
	if err != nil {
		return Loan{}, fmt.Errorf("creating loan: %w", err)
	}
	loans = append(loans, newLoan)
	if err := s.repo.SaveLoans(ctx, loans); err != nil {
		return Loan{}, fmt.Errorf("creating loan: %w", err)
	}

	return newLoan, nil
}

/* Closes a loan. The second return of the same loan fails with
ErrLoanAlreadyReturned and changes nothing. A return past the due date
issues an automatic fine of DailyLateFee per whole day late before the book
and loan collections are persisted. Returns the updated loan and the fine
amount, zero when no fine was issued. */
func (s *LoanService) ReturnLoan(ctx context.Context, loanID int) (Loan, float64, error) {
	loans, err := s.repo.LoadLoans(ctx)
	if err != nil {
		return Loan{}, 0, fmt.Errorf("returning loan: %w", err)
	}

	idx := indexByID(loans, loanID, func(l Loan) int { return l.ID })
	if idx < 0 {
		return Loan{}, 0, ErrLoanNotFound
	}
	if loans[idx].Status == LoanStatusReturned {
		return Loan{}, 0, ErrLoanAlreadyReturned
	}

	returned := Today()
	loans[idx].ReturnDate = &returned
	loans[idx].Status = LoanStatusReturned

	var fee float64
	if daysLate := loans[idx].DueDate.DaysOverdue(time.Now()); daysLate > 0 {
		fee = float64(daysLate) * DailyLateFee
		concept := fmt.Sprintf("Retraso de %d días en préstamo #%d", daysLate, loanID)
		if _, err := s.fines.issue(ctx, loans[idx].UserID, fee, concept); err != nil {
			return Loan{}, 0, fmt.Errorf("returning loan: %w", err)
		}
		loans[idx].FineGenerated = true
	}

	books, err := s.repo.LoadBooks(ctx)
	if err != nil {
		return Loan{}, 0, fmt.Errorf("returning loan: %w", err)
	}
	// A loan whose book record is gone still closes; only the availability
	// update is skipped.
	if bookIdx := indexByID(books, loans[idx].BookID, func(b Book) int { return b.ID }); bookIdx >= 0 {
		books[bookIdx].AvailableCopies++
		if err := s.repo.SaveBooks(ctx, books); err != nil {
			return Loan{}, 0, fmt.Errorf("returning loan: %w", err)
		}
	}

	if err := s.repo.SaveLoans(ctx, loans); err != nil {
		return Loan{}, 0, fmt.Errorf("returning loan: %w", err)
	}

	return loans[idx], fee, nil
}

func (s *LoanService) GetLoan(ctx context.Context, id int) (Loan, error) {
	loans, err := s.repo.LoadLoans(ctx)
	if err != nil {
		return Loan{}, fmt.Errorf("searching loan by ID: %w", err)
	}

	found, ok := FindByID(loans, id, func(l Loan) int { return l.ID })
	if !ok {
		return Loan{}, ErrLoanNotFound
	}
	return found, nil
}

func (s *LoanService) ListLoans(ctx context.Context) ([]Loan, error) {
	return s.repo.LoadLoans(ctx)
}

func (s *LoanService) ListActiveLoans(ctx context.Context) ([]Loan, error) {
	loans, err := s.repo.LoadLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active loans: %w", err)
	}

	active := []Loan{}
	for _, l := range loans {
		if l.Status == LoanStatusActive {
			active = append(active, l)
		}
	}
	return active, nil
}

// ListOverdueLoans computes the overdue list on the fly; no stored status
// tracks it.
func (s *LoanService) ListOverdueLoans(ctx context.Context) ([]Loan, error) {
	loans, err := s.repo.LoadLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing overdue loans: %w", err)
	}

	now := time.Now()
	overdue := []Loan{}
	for _, l := range loans {
		if l.IsOverdue(now) {
			overdue = append(overdue, l)
		}
	}
	return overdue, nil
}
