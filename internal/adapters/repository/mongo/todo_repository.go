package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

type TodoRepository struct {
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) ports.TodoRepository {
	return &TodoRepository{coll: db.Collection(todosCollection)}
}

// ownerFilter translates an OwnerScope into a query predicate on the owner
// reference.
func ownerFilter(user primitive.ObjectID, scope domain.OwnerScope) bson.M {
	switch scope {
	case domain.OwnerScopeOwned:
		return bson.M{"user": user}
	case domain.OwnerScopeNotOwned:
		return bson.M{"user": bson.M{"$ne": user}}
	default:
		return bson.M{}
	}
}

func (r *TodoRepository) Save(ctx context.Context, todo *domain.Todo) error {
	now := time.Now()
	todo.ID = primitive.NewObjectID()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, todo); err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Find(ctx context.Context, user primitive.ObjectID, scope domain.OwnerScope, page, limit int64) (*domain.Page[domain.Todo], error) {
	return findPage[domain.Todo](ctx, r.coll, ownerFilter(user, scope), page, limit)
}

func (r *TodoRepository) FindByID(ctx context.Context, id, user primitive.ObjectID, scope domain.OwnerScope) (*domain.Todo, error) {
	filter := ownerFilter(user, scope)
	filter["_id"] = id

	todo := &domain.Todo{}
	err := r.coll.FindOne(ctx, filter).Decode(todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return todo, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	todo.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"content":   todo.Content,
		"completed": todo.Completed,
		"updatedAt": todo.UpdatedAt,
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": todo.ID, "user": todo.User}, update); err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, user primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user": user}); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
