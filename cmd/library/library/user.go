package library

import (
	"context"
	"fmt"
)

type User struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Active       bool   `json:"active"`
	PendingFines int    `json:"pending_fines"`
}

// MemberService manages the library's registered users. The PendingFines
// counter on each user belongs to the loan and fine services; this service
// never touches it after creation.
type MemberService struct {
	repo Repository
}

func NewMemberService(repo Repository) *MemberService {
	return &MemberService{repo: repo}
}

type CreateUserRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

type UpdateUserRequest struct {
	ID        int
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
}

func (s *MemberService) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	id, err := s.repo.NextID(ctx, counterUsers)
	if err != nil {
		return User{}, fmt.Errorf("creating user: %w", err)
	}

	newUser := User{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Active:    true,
	}

	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return User{}, fmt.Errorf("creating user: %w", err)
	}
	users = append(users, newUser)
	if err := s.repo.SaveUsers(ctx, users); err != nil {
		return User{}, fmt.Errorf("creating user: %w", err)
	}

	return newUser, nil
}

func (s *MemberService) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.LoadUsers(ctx)
}

func (s *MemberService) GetUser(ctx context.Context, id int) (User, error) {
	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return User{}, fmt.Errorf("searching user by ID: %w", err)
	}

	found, ok := FindByID(users, id, func(u User) int { return u.ID })
	if !ok {
		return User{}, ErrUserNotFound
	}
	return found, nil
}

func (s *MemberService) UpdateUser(ctx context.Context, req UpdateUserRequest) (User, error) {
	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return User{}, fmt.Errorf("updating user: %w", err)
	}

	idx := indexByID(users, req.ID, func(u User) int { return u.ID })
	if idx < 0 {
		return User{}, ErrUserNotFound
	}

	if req.FirstName != nil {
		users[idx].FirstName = *req.FirstName
	}
	if req.LastName != nil {
		users[idx].LastName = *req.LastName
	}
	if req.Email != nil {
		users[idx].Email = *req.Email
	}
	if req.Phone != nil {
		users[idx].Phone = *req.Phone
	}
	if req.Address != nil {
		users[idx].Address = *req.Address
	}

	if err := s.repo.SaveUsers(ctx, users); err != nil {
		return User{}, fmt.Errorf("updating user: %w", err)
	}
	return users[idx], nil
}

// DeactivateUser soft-deletes a user. The record and its pending-fine
// counter stay on file.
func (s *MemberService) DeactivateUser(ctx context.Context, id int) (User, error) {
	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		return User{}, fmt.Errorf("deactivating user: %w", err)
	}

	idx := indexByID(users, id, func(u User) int { return u.ID })
	if idx < 0 {
		return User{}, ErrUserNotFound
	}
	users[idx].Active = false

	if err := s.repo.SaveUsers(ctx, users); err != nil {
		return User{}, fmt.Errorf("deactivating user: %w", err)
	}
	return users[idx], nil
}
