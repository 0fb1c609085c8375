package library

import (
	"context"
	"fmt"
)

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateCategoryRequest struct {
	Name        string
	Description string
}

type UpdateCategoryRequest struct {
	ID          int
	Name        *string
	Description *string
}

func (s *CatalogService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	id, err := s.repo.NextID(ctx, counterCategories)
	if err != nil {
		return Category{}, fmt.Errorf("creating category: %w", err)
	}

	newCategory := Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}

	categories, err := s.repo.LoadCategories(ctx)
	if err != nil {
		return Category{}, fmt.Errorf("creating category: %w", err)
	}
	categories = append(categories, newCategory)
	if err := s.repo.SaveCategories(ctx, categories); err != nil {
		return Category{}, fmt.Errorf("creating category: %w", err)
	}

	return newCategory, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.LoadCategories(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id int) (Category, error) {
	categories, err := s.repo.LoadCategories(ctx)
	if err != nil {
		return Category{}, fmt.Errorf("searching category by ID: %w", err)
	}

	found, ok := FindByID(categories, id, func(c Category) int { return c.ID })
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	return found, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, req UpdateCategoryRequest) (Category, error) {
	categories, err := s.repo.LoadCategories(ctx)
	if err != nil {
		return Category{}, fmt.Errorf("updating category: %w", err)
	}

	idx := indexByID(categories, req.ID, func(c Category) int { return c.ID })
	if idx < 0 {
		return Category{}, ErrCategoryNotFound
	}

	if req.Name != nil {
		categories[idx].Name = *req.Name
	}
	if req.Description != nil {
		categories[idx].Description = *req.Description
	}

	if err := s.repo.SaveCategories(ctx, categories); err != nil {
		return Category{}, fmt.Errorf("updating category: %w", err)
	}
	return categories[idx], nil
}

// DeleteCategory removes the category record entirely, like DeleteAuthor.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	categories, err := s.repo.LoadCategories(ctx)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	categories, removed := DeleteByID(categories, id, func(c Category) int { return c.ID })
	if !removed {
		return ErrCategoryNotFound
	}

	if err := s.repo.SaveCategories(ctx, categories); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}
