package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/todoapp/api/internal/core/domain"
)

type CommentRepository interface {
	Save(ctx context.Context, comment *domain.Comment) error
	FindByPost(ctx context.Context, post primitive.ObjectID, page, limit int64) (*domain.Page[domain.Comment], error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error)
	FindByIDAndOwner(ctx context.Context, id, user primitive.ObjectID) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id, user primitive.ObjectID) error
}

type SaveCommentInput struct {
	Email string
	Name  string
	Body  string
}

type UpdateCommentInput struct {
	Email string
	Name  string
	Body  string
}

type CommentService interface {
	Save(ctx context.Context, userID, postID string, input SaveCommentInput) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string, page, pageSize int64) (*domain.Page[domain.Comment], error)
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Update(ctx context.Context, userID, id string, input UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, userID, id string) (string, error)
}
