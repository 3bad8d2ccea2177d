package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/todoapp/api/internal/core/domain"
)

type PostRepository interface {
	Save(ctx context.Context, post *domain.Post) error
	Find(ctx context.Context, page, limit int64) (*domain.Page[domain.Post], error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error)
	FindByIDAndOwner(ctx context.Context, id, user primitive.ObjectID) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id, user primitive.ObjectID) error
}

type SavePostInput struct {
	Title string
	Body  string
}

type UpdatePostInput struct {
	Title string
	Body  string
}

type PostService interface {
	Save(ctx context.Context, userID string, input SavePostInput) (*domain.Post, error)
	List(ctx context.Context, page, pageSize int64) (*domain.Page[domain.Post], error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, userID, id string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, userID, id string) (string, error)
}
