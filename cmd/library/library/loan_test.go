package library_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/library-service/cmd/library/library"
	librarymock "github.com/library-service/cmd/library/library/mocks"
	"github.com/matryer/is"
	gomock "go.uber.org/mock/gomock"
)

var ctx context.Context = context.Background()

func activeUser(id int) library.User {
	return library.User{
		ID:        id,
		FirstName: "Elena",
		LastName:  "Quiroga",
		Email:     "elena@example.com",
		Phone:     "55512345",
		Active:    true,
	}
}

func activeBook(id, available int) library.Book {
	return library.Book{
		ID:              id,
		Title:           "Cien años de soledad",
		ISBN:            "9780307474728",
		AuthorID:        1,
		CategoryID:      1,
		PublishedYear:   1967,
		TotalCopies:     3,
		AvailableCopies: available,
		Active:          true,
	}
}

func newLoanService(repo library.Repository) *library.LoanService {
	return library.NewLoanService(repo, library.NewFineService(repo))
}

func TestCreateLoan(t *testing.T) {

	t.Run("creates a loan and decrements the book's availability", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		mockRepo.EXPECT().LoadUsers(gomock.Any()).Return([]library.User{activeUser(1)}, nil)
		mockRepo.EXPECT().LoadBooks(gomock.Any()).Return([]library.Book{activeBook(7, 2)}, nil)
		mockRepo.EXPECT().NextID(gomock.Any(), "loans").Return(4, nil)

		gomock.InOrder(
			mockRepo.EXPECT().SaveBooks(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, books []library.Book) error {
				is.Equal(len(books), 1)
				is.Equal(books[0].AvailableCopies, 1)
				return nil
			}),
			mockRepo.EXPECT().LoadLoans(gomock.Any()).Return([]library.Loan{}, nil),
			mockRepo.EXPECT().SaveLoans(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, loans []library.Loan) error {
				is.Equal(len(loans), 1)
				is.Equal(loans[0].ID, 4)
				return nil
			}),
		)

		loan, err := lS.CreateLoan(ctx, 1, 7)
		is.NoErr(err)
		is.Equal(loan.ID, 4)
		is.Equal(loan.UserID, 1)
		is.Equal(loan.BookID, 7)
		is.Equal(loan.Status, library.LoanStatusActive)
		is.Equal(loan.DueDate, loan.LoanDate.AddDays(library.LoanPeriodDays))
		is.True(loan.ReturnDate == nil)
		is.True(!loan.FineGenerated)
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		mockRepo.EXPECT().LoadUsers(gomock.Any()).Return([]library.User{}, nil)

		_, err := lS.CreateLoan(ctx, 1, 7)
		is.True(errors.Is(err, library.ErrUserNotEligible))
	})

	t.Run("rejects an inactive user", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		user := activeUser(1)
		user.Active = false
		mockRepo.EXPECT().LoadUsers(gomock.Any()).Return([]library.User{user}, nil)

		_, err := lS.CreateLoan(ctx, 1, 7)
		is.True(errors.Is(err, library.ErrUserNotEligible))
	})

	t.Run("rejects a user with pending fines", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		user := activeUser(1)
		user.PendingFines = 2
		mockRepo.EXPECT().LoadUsers(gomock.Any()).Return([]library.User{user}, nil)

		_, err := lS.CreateLoan(ctx, 1, 7)
		is.True(errors.Is(err, library.ErrUserHasPendingFines))
	})

	t.Run("eligibility is checked before pending fines", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		user := activeUser(1)
		user.Active = false
		user.PendingFines = 2
		mockRepo.EXPECT().LoadUsers(gomock.Any()).Return([]library.User{user}, nil)

		_, err := lS.CreateLoan(ctx, 1, 7)
		is.True(errors.Is(err, library.ErrUserNotEligible))
	})

	t.Run("rejects an unknown book", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		mockRepo.EXPECT().LoadUsers(gomock.Any()).Return([]library.User{activeUser(1)}, nil)
		mockRepo.EXPECT().LoadBooks(gomock.Any()).Return([]library.Book{}, nil)

		_, err := lS.CreateLoan(ctx, 1, 7)
		is.True(errors.Is(err, library.ErrBookNotAvailable))
	})

	t.Run("rejects a deactivated book", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		book := activeBook(7, 2)
		book.Active = false
		mockRepo.EXPECT().LoadUsers(gomock.Any()).Return([]library.User{activeUser(1)}, nil)
		mockRepo.EXPECT().LoadBooks(gomock.Any()).Return([]library.Book{book}, nil)

		_, err := lS.CreateLoan(ctx, 1, 7)
		is.True(errors.Is(err, library.ErrBookNotAvailable))
	})

	t.Run("rejects a book with no copies available", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		mockRepo.EXPECT().LoadUsers(gomock.Any()).Return([]library.User{activeUser(1)}, nil)
		mockRepo.EXPECT().LoadBooks(gomock.Any()).Return([]library.Book{activeBook(7, 0)}, nil)

		_, err := lS.CreateLoan(ctx, 1, 7)
		is.True(errors.Is(err, library.ErrNoCopiesAvailable))
	})
}

func TestReturnLoan(t *testing.T) {

	t.Run("returns a loan on time without a fine", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		today := library.Today()
		openLoan := library.Loan{
			ID: 4, UserID: 1, BookID: 7,
			LoanDate: today, DueDate: today.AddDays(library.LoanPeriodDays),
			Status: library.LoanStatusActive,
		}

		mockRepo.EXPECT().LoadLoans(gomock.Any()).Return([]library.Loan{openLoan}, nil)
		mockRepo.EXPECT().LoadBooks(gomock.Any()).Return([]library.Book{activeBook(7, 1)}, nil)
		mockRepo.EXPECT().SaveBooks(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, books []library.Book) error {
			is.Equal(books[0].AvailableCopies, 2)
			return nil
		})
		mockRepo.EXPECT().SaveLoans(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, loans []library.Loan) error {
			is.Equal(loans[0].Status, library.LoanStatusReturned)
			is.True(loans[0].ReturnDate != nil)
			return nil
		})

		returned, fee, err := lS.ReturnLoan(ctx, 4)
		is.NoErr(err)
		is.Equal(fee, 0.0)
		is.Equal(returned.Status, library.LoanStatusReturned)
		is.True(!returned.FineGenerated)
	})

	t.Run("issues a fine for a late return", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		dueDate := library.NewDate(time.Now().AddDate(0, 0, -3))
		lateLoan := library.Loan{
			ID: 5, UserID: 1, BookID: 7,
			LoanDate: dueDate.AddDays(-library.LoanPeriodDays), DueDate: dueDate,
			Status: library.LoanStatusActive,
		}

		mockRepo.EXPECT().LoadLoans(gomock.Any()).Return([]library.Loan{lateLoan}, nil)
		mockRepo.EXPECT().NextID(gomock.Any(), "fines").Return(9, nil)
		mockRepo.EXPECT().LoadFines(gomock.Any()).Return([]library.Fine{}, nil)
		mockRepo.EXPECT().SaveFines(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fines []library.Fine) error {
			is.Equal(len(fines), 1)
			is.Equal(fines[0].ID, 9)
			is.Equal(fines[0].UserID, 1)
			is.Equal(fines[0].Amount, 3.00)
			is.Equal(fines[0].Concept, "Retraso de 3 días en préstamo #5")
			is.Equal(fines[0].Status, library.FineStatusPending)
			return nil
		})
		mockRepo.EXPECT().LoadUsers(gomock.Any()).Return([]library.User{activeUser(1)}, nil)
		mockRepo.EXPECT().SaveUsers(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, users []library.User) error {
			is.Equal(users[0].PendingFines, 1)
			return nil
		})
		mockRepo.EXPECT().LoadBooks(gomock.Any()).Return([]library.Book{activeBook(7, 0)}, nil)
		mockRepo.EXPECT().SaveBooks(gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().SaveLoans(gomock.Any(), gomock.Any()).Return(nil)

		returned, fee, err := lS.ReturnLoan(ctx, 5)
		is.NoErr(err)
		is.Equal(fee, 3.00)
		is.True(returned.FineGenerated)
		is.Equal(returned.Status, library.LoanStatusReturned)
	})

	t.Run("fails when the loan does not exist", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		mockRepo.EXPECT().LoadLoans(gomock.Any()).Return([]library.Loan{}, nil)

		_, _, err := lS.ReturnLoan(ctx, 99)
		is.True(errors.Is(err, library.ErrLoanNotFound))
	})

	t.Run("fails on a second return of the same loan", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		returnedDate := library.Today()
		closedLoan := library.Loan{
			ID: 4, UserID: 1, BookID: 7,
			LoanDate: returnedDate, DueDate: returnedDate.AddDays(library.LoanPeriodDays),
			ReturnDate: &returnedDate, Status: library.LoanStatusReturned,
		}

		mockRepo.EXPECT().LoadLoans(gomock.Any()).Return([]library.Loan{closedLoan}, nil)

		_, _, err := lS.ReturnLoan(ctx, 4)
		is.True(errors.Is(err, library.ErrLoanAlreadyReturned))
	})

	t.Run("still closes the loan when the book record is gone", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		today := library.Today()
		openLoan := library.Loan{
			ID: 4, UserID: 1, BookID: 7,
			LoanDate: today, DueDate: today.AddDays(library.LoanPeriodDays),
			Status: library.LoanStatusActive,
		}

		mockRepo.EXPECT().LoadLoans(gomock.Any()).Return([]library.Loan{openLoan}, nil)
		mockRepo.EXPECT().LoadBooks(gomock.Any()).Return([]library.Book{}, nil)
		// no SaveBooks call expected
		mockRepo.EXPECT().SaveLoans(gomock.Any(), gomock.Any()).Return(nil)

		returned, fee, err := lS.ReturnLoan(ctx, 4)
		is.NoErr(err)
		is.Equal(fee, 0.0)
		is.Equal(returned.Status, library.LoanStatusReturned)
	})
}

func TestListLoans(t *testing.T) {

	t.Run("lists only open loans as active", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		today := library.Today()
		open := library.Loan{ID: 1, Status: library.LoanStatusActive, DueDate: today.AddDays(7)}
		closed := library.Loan{ID: 2, Status: library.LoanStatusReturned, DueDate: today.AddDays(7)}

		mockRepo.EXPECT().LoadLoans(gomock.Any()).Return([]library.Loan{open, closed}, nil)

		active, err := lS.ListActiveLoans(ctx)
		is.NoErr(err)
		is.Equal(len(active), 1)
		is.Equal(active[0].ID, 1)
	})

	t.Run("derives the overdue list from open loans past due", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		pastDue := library.NewDate(time.Now().AddDate(0, 0, -2))
		today := library.Today()
		overdueLoan := library.Loan{ID: 1, Status: library.LoanStatusActive, DueDate: pastDue}
		onTimeLoan := library.Loan{ID: 2, Status: library.LoanStatusActive, DueDate: today.AddDays(7)}
		closedLate := library.Loan{ID: 3, Status: library.LoanStatusReturned, DueDate: pastDue}

		mockRepo.EXPECT().LoadLoans(gomock.Any()).Return([]library.Loan{overdueLoan, onTimeLoan, closedLate}, nil)

		overdue, err := lS.ListOverdueLoans(ctx)
		is.NoErr(err)
		is.Equal(len(overdue), 1)
		is.Equal(overdue[0].ID, 1)
	})

	t.Run("fails when a loan cannot be found by id", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := librarymock.NewMockRepository(ctrl)
		lS := newLoanService(mockRepo)

		mockRepo.EXPECT().LoadLoans(gomock.Any()).Return([]library.Loan{}, nil)

		_, err := lS.GetLoan(ctx, 42)
		is.True(errors.Is(err, library.ErrLoanNotFound))
	})
}
