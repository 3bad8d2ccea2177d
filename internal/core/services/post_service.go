package services

import (
	"context"
	"fmt"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

type PostService struct {
	repo ports.PostRepository
}

func NewPostService(repo ports.PostRepository) ports.PostService {
	return &PostService{repo: repo}
}

func (s *PostService) Save(ctx context.Context, userID string, input ports.SavePostInput) (*domain.Post, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title: input.Title,
		Body:  input.Body,
		User:  owner,
	}
	if err := s.repo.Save(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to save post: %w", err)
	}
	return post, nil
}

// List is deliberately unscoped: posts are a public feed.
func (s *PostService) List(ctx context.Context, page, pageSize int64) (*domain.Page[domain.Post], error) {
	result, err := s.repo.Find(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return result, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := parseID(id, "post")
	if err != nil {
		return nil, err
	}

	post, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, domain.NotFound("post not found")
	}
	return post, nil
}

func (s *PostService) Update(ctx context.Context, userID, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	oid, err := parseID(id, "post")
	if err != nil {
		return nil, err
	}

	post, err := s.repo.FindByIDAndOwner(ctx, oid, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, domain.NotFound("post not found")
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Body != "" {
		post.Body = input.Body
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, userID, id string) (string, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return "", err
	}
	oid, err := parseID(id, "post")
	if err != nil {
		return "", err
	}

	post, err := s.repo.FindByIDAndOwner(ctx, oid, owner)
	if err != nil {
		return "", fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return "", domain.NotFound("post not found")
	}

	if err := s.repo.Delete(ctx, oid, owner); err != nil {
		return "", fmt.Errorf("failed to delete post: %w", err)
	}
	return "post deleted successfully", nil
}
