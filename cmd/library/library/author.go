package library

import (
	"context"
	"fmt"
)

type Author struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Nationality string `json:"nationality"`
}

type CreateAuthorRequest struct {
	FirstName   string
	LastName    string
	Nationality string
}

type UpdateAuthorRequest struct {
	ID          int
	FirstName   *string
	LastName    *string
	Nationality *string
}

func (s *CatalogService) CreateAuthor(ctx context.Context, req CreateAuthorRequest) (Author, error) {
	id, err := s.repo.NextID(ctx, counterAuthors)
	if err != nil {
		return Author{}, fmt.Errorf("creating author: %w", err)
	}

	newAuthor := Author{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Nationality: req.Nationality,
	}

	authors, err := s.repo.LoadAuthors(ctx)
	if err != nil {
		return Author{}, fmt.Errorf("creating author: %w", err)
	}
	authors = append(authors, newAuthor)
	if err := s.repo.SaveAuthors(ctx, authors); err != nil {
		return Author{}, fmt.Errorf("creating author: %w", err)
	}

	return newAuthor, nil
}

func (s *CatalogService) ListAuthors(ctx context.Context) ([]Author, error) {
	return s.repo.LoadAuthors(ctx)
}

func (s *CatalogService) GetAuthor(ctx context.Context, id int) (Author, error) {
	authors, err := s.repo.LoadAuthors(ctx)
	if err != nil {
		return Author{}, fmt.Errorf("searching author by ID: %w", err)
	}

	found, ok := FindByID(authors, id, func(a Author) int { return a.ID })
	if !ok {
		return Author{}, ErrAuthorNotFound
	}
	return found, nil
}

func (s *CatalogService) UpdateAuthor(ctx context.Context, req UpdateAuthorRequest) (Author, error) {
	authors, err := s.repo.LoadAuthors(ctx)
	if err != nil {
		return Author{}, fmt.Errorf("updating author: %w", err)
	}

	idx := indexByID(authors, req.ID, func(a Author) int { return a.ID })
	if idx < 0 {
		return Author{}, ErrAuthorNotFound
	}

	if req.FirstName != nil {
		authors[idx].FirstName = *req.FirstName
	}
	if req.LastName != nil {
		authors[idx].LastName = *req.LastName
	}
	if req.Nationality != nil {
		authors[idx].Nationality = *req.Nationality
	}

	if err := s.repo.SaveAuthors(ctx, authors); err != nil {
		return Author{}, fmt.Errorf("updating author: %w", err)
	}
	return authors[idx], nil
}

// DeleteAuthor removes the author record entirely. Authors carry no active
// flag; books referencing a deleted author keep the dangling id.
func (s *CatalogService) DeleteAuthor(ctx context.Context, id int) error {
	authors, err := s.repo.LoadAuthors(ctx)
	if err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}

	authors, removed := DeleteByID(authors, id, func(a Author) int { return a.ID })
	if !removed {
		return ErrAuthorNotFound
	}

	if err := s.repo.SaveAuthors(ctx, authors); err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}
	return nil
}
