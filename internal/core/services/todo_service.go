package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

type TodoService struct {
	repo ports.TodoRepository

	// readScope restricts listing and single fetches relative to the
	// caller. Mutations are always scoped to the owner.
	readScope domain.OwnerScope
}

func NewTodoService(repo ports.TodoRepository, readScope domain.OwnerScope) ports.TodoService {
	return &TodoService{repo: repo, readScope: readScope}
}

func (s *TodoService) Save(ctx context.Context, userID string, input ports.SaveTodoInput) (*domain.Todo, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		Content:   input.Content,
		Completed: input.Completed,
		User:      owner,
	}
	if err := s.repo.Save(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to save todo: %w", err)
	}
	return todo, nil
}

func (s *TodoService) List(ctx context.Context, userID string, page, pageSize int64) (*domain.Page[domain.Todo], error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}

	result, err := s.repo.Find(ctx, owner, s.readScope, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return result, nil
}

func (s *TodoService) GetByID(ctx context.Context, userID, id string) (*domain.Todo, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	oid, err := parseID(id, "todo")
	if err != nil {
		return nil, err
	}

	todo, err := s.repo.FindByID(ctx, oid, owner, s.readScope)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}
	if todo == nil {
		return nil, domain.NotFound("todo not found")
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, userID, id string, input ports.UpdateTodoInput) (*domain.Todo, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}
	oid, err := parseID(id, "todo")
	if err != nil {
		return nil, err
	}

	todo, err := s.repo.FindByID(ctx, oid, owner, domain.OwnerScopeOwned)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}
	if todo == nil {
		return nil, domain.NotFound("todo not found")
	}

	if input.Content != "" {
		todo.Content = input.Content
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, userID, id string) (string, error) {
	owner, err := parseID(userID, "user")
	if err != nil {
		return "", err
	}
	oid, err := parseID(id, "todo")
	if err != nil {
		return "", err
	}

	todo, err := s.repo.FindByID(ctx, oid, owner, domain.OwnerScopeOwned)
	if err != nil {
		return "", fmt.Errorf("failed to get todo: %w", err)
	}
	if todo == nil {
		return "", domain.NotFound("todo not found")
	}

	if err := s.repo.Delete(ctx, oid, owner); err != nil {
		return "", fmt.Errorf("failed to delete todo: %w", err)
	}
	return "todo deleted successfully", nil
}

func parseID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.BadRequest("invalid " + what + " id")
	}
	return oid, nil
}
