package library

import (
	"context"
	"fmt"
	"math"
)

const (
	FineStatusPending = "pending"
	FineStatusPaid    = "paid"
)

// Bounds the validation layer applies to manually entered fine amounts.
// The automatic path taken on a late return has no upper bound.
const (
	FineAmountMin = 0.01
	FineAmountMax = 10000.00
)

type Fine struct {
	ID          int     `json:"id"`
	UserID      int     `json:"user_id"`
	Amount      float64 `json:"amount"`
	Concept     string  `json:"concept"`
	IssuedDate  Date    `json:"issued_date"`
	PaymentDate *Date   `json:"payment_date"`
	Status      string  `json:"status"`
}

// FineService tracks monetary penalties and keeps each user's pending-fine
// counter in step with the fine lifecycle.
type FineService struct {
	repo Repository
}

func NewFineService(repo Repository) *FineService {
	return &FineService{repo: repo}
}

// CreateFine registers a manually entered fine. The target user must exist
// and the amount must still be positive after rounding to two decimals; the
// 0.01..10000.00 range check belongs to the input layer and is not repeated
// here.
func (s *FineService) CreateFine(ctx context.Context, userID int, amount float64, concept string) (Fine, error) {
	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return Fine{}, fmt.Errorf("creating fine: %w", err)
	}
	if _, ok := FindByID(users, userID, func(u User) int { return u.ID }); !ok {
		return Fine{}, ErrUserNotFound
	}

	if round2(amount) <= 0 {
		return Fine{}, ErrFineAmountInvalid
	}

	return s.issue(ctx, userID, amount, concept)
}

// issue appends the fine and bumps the owner's pending counter: two
// independent writes, fines first. Both the manual and the automatic path
// land here; the automatic one skips the user lookup and the upper bound.
func (s *FineService) issue(ctx context.Context, userID int, amount float64, concept string) (Fine, error) {
	id, err := s.repo.NextID(ctx, counterFines)
	if err != nil {
		return Fine{}, fmt.Errorf("issuing fine: %w", err)
	}

	newFine := Fine{
		ID:         id,
		UserID:     userID,
		Amount:     round2(amount),
		Concept:    concept,
		IssuedDate: Today(),
		Status:     FineStatusPending,
	}

	fines, err := s.repo.LoadFines(ctx)
	if err != nil {
		return Fine{}, fmt.Errorf("issuing fine: %w", err)
	}
	fines = append(fines, newFine)
	if err := s.repo.SaveFines(ctx, fines); err != nil {
		return Fine{}, fmt.Errorf("issuing fine: %w", err)
	}

	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return Fine{}, fmt.Errorf("issuing fine: %w", err)
	}
	if idx := indexByID(users, userID, func(u User) int { return u.ID }); idx >= 0 {
		users[idx].PendingFines++
		if err := s.repo.SaveUsers(ctx, users); err != nil {
			return Fine{}, fmt.Errorf("issuing fine: %w", err)
		}
	}

	return newFine, nil
}

/* Settles a fine. Paying twice fails with ErrFineAlreadyPaid and changes
nothing. The owner's pending counter is decremented after the fine is
persisted, floored at zero so a drifted counter never goes negative. */
func (s *FineService) PayFine(ctx context.Context, fineID int) (Fine, error) {
	fines, err := s.repo.LoadFines(ctx)
	if err != nil {
		return Fine{}, fmt.Errorf("paying fine: %w", err)
	}

	idx := indexByID(fines, fineID, func(f Fine) int { return f.ID })
	if idx < 0 {
		return Fine{}, ErrFineNotFound
	}
	if fines[idx].Status == FineStatusPaid {
		return Fine{}, ErrFineAlreadyPaid
	}

	paid := Today()
	fines[idx].PaymentDate = &paid
	fines[idx].Status = FineStatusPaid
	if err := s.repo.SaveFines(ctx, fines); err != nil {
		return Fine{}, fmt.Errorf("paying fine: %w", err)
	}

	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return Fine{}, fmt.Errorf("paying fine: %w", err)
	}
	if userIdx := indexByID(users, fines[idx].UserID, func(u User) int { return u.ID }); userIdx >= 0 {
		if users[userIdx].PendingFines > 0 {
			users[userIdx].PendingFines--
		}
		if err := s.repo.SaveUsers(ctx, users); err != nil {
			return Fine{}, fmt.Errorf("paying fine: %w", err)
		}
	}

	return fines[idx], nil
}

func (s *FineService) GetFine(ctx context.Context, id int) (Fine, error) {
	fines, err := s.repo.LoadFines(ctx)
	if err != nil {
		return Fine{}, fmt.Errorf("searching fine by ID: %w", err)
	}

	found, ok := FindByID(fines, id, func(f Fine) int { return f.ID })
	if !ok {
		return Fine{}, ErrFineNotFound
	}
	return found, nil
}

func (s *FineService) ListFines(ctx context.Context) ([]Fine, error) {
	return s.repo.LoadFines(ctx)
}

// ListPendingFines returns the unpaid fines along with the total amount
// owed across them.
func (s *FineService) ListPendingFines(ctx context.Context) ([]Fine, float64, error) {
	fines, err := s.repo.LoadFines(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing pending fines: %w", err)
	}

	pending := []Fine{}
	var total float64
	for _, f := range fines {
		if f.Status == FineStatusPending {
			pending = append(pending, f)
			total += f.Amount
		}
	}
	return pending, round2(total), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
