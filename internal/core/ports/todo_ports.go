package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/todoapp/api/internal/core/domain"
)

type TodoRepository interface {
	Save(ctx context.Context, todo *domain.Todo) error
	Find(ctx context.Context, user primitive.ObjectID, scope domain.OwnerScope, page, limit int64) (*domain.Page[domain.Todo], error)
	FindByID(ctx context.Context, id, user primitive.ObjectID, scope domain.OwnerScope) (*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id, user primitive.ObjectID) error
}

type SaveTodoInput struct {
	Content   string
	Completed bool
}

// UpdateTodoInput carries a partial update; nil Completed and empty Content
// leave the stored fields untouched.
type UpdateTodoInput struct {
	Content   string
	Completed *bool
}

type TodoService interface {
	Save(ctx context.Context, userID string, input SaveTodoInput) (*domain.Todo, error)
	List(ctx context.Context, userID string, page, pageSize int64) (*domain.Page[domain.Todo], error)
	GetByID(ctx context.Context, userID, id string) (*domain.Todo, error)
	Update(ctx context.Context, userID, id string, input UpdateTodoInput) (*domain.Todo, error)
	Delete(ctx context.Context, userID, id string) (string, error)
}
