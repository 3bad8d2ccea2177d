package services

import (
	"context"
	"fmt"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

type CommentService struct {
	repo  ports.CommentRepository
	posts ports.PostRepository
}

func NewCommentService(repo ports.CommentRepository, posts ports.PostRepository) ports.CommentService {
	return &CommentService{repo: repo, posts: posts}
}

func (s *CommentService) Save(ctx context.Context, userID, postID string, input ports.SaveCommentInput) (*domain.Comment, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	pid, err := parseID(postID, "post")
	if err != nil {
		return nil, err
	}

	post, err := s.posts.FindByID(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, domain.NotFound("post not found")
	}

	comment := &domain.Comment{
		Email: input.Email,
		Name:  input.Name,
		Body:  input.Body,
		Post:  pid,
		User:  owner,
	}
	if err := s.repo.Save(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return comment, nil
}

func (s *CommentService) ListByPost(ctx context.Context, postID string, page, pageSize int64) (*domain.Page[domain.Comment], error) {
	pid, err := parseID(postID, "post")
	if err != nil {
		return nil, err
	}

	result, err := s.repo.FindByPost(ctx, pid, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return result, nil
}

func (s *CommentService) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := parseID(id, "comment")
	if err != nil {
		return nil, err
	}

	comment, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return nil, domain.NotFound("comment not found")
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, userID, id string, input ports.UpdateCommentInput) (*domain.Comment, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	oid, err := parseID(id, "comment")
	if err != nil {
		return nil, err
	}

	comment, err := s.repo.FindByIDAndOwner(ctx, oid, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return nil, domain.NotFound("comment not found")
	}

	if input.Email != "" {
		comment.Email = input.Email
	}
	if input.Name != "" {
		comment.Name = input.Name
	}
	if input.Body != "" {
		comment.Body = input.Body
	}

	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, userID, id string) (string, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return "", err
	}
	oid, err := parseID(id, "comment")
	if err != nil {
		return "", err
	}

	comment, err := s.repo.FindByIDAndOwner(ctx, oid, owner)
	if err != nil {
		return "", fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return "", domain.NotFound("comment not found")
	}

	if err := s.repo.Delete(ctx, oid, owner); err != nil {
		return "", fmt.Errorf("failed to delete comment: %w", err)
	}
	return "comment deleted successfully", nil
}
