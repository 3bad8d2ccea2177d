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

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) ports.CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

func (r *CommentRepository) Save(ctx context.Context, comment *domain.Comment) error {
	now := time.Now()
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) FindByPost(ctx context.Context, post primitive.ObjectID, page, limit int64) (*domain.Page[domain.Comment], error) {
	return findPage[domain.Comment](ctx, r.coll, bson.M{"post": post}, page, limit)
}

func (r *CommentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CommentRepository) FindByIDAndOwner(ctx context.Context, id, user primitive.ObjectID) (*domain.Comment, error) {
	return r.findOne(ctx, bson.M{"_id": id, "user": user})
}

func (r *CommentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Comment, error) {
	comment := &domain.Comment{}
	err := r.coll.FindOne(ctx, filter).Decode(comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return comment, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	comment.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"email":     comment.Email,
		"name":      comment.Name,
		"body":      comment.Body,
		"updatedAt": comment.UpdatedAt,
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": comment.ID, "user": comment.User}, update); err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id, user primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user": user}); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
