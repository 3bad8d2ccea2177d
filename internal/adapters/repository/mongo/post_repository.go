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

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) ports.PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

func (r *PostRepository) Save(ctx context.Context, post *domain.Post) error {
	now := time.Now()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (r *PostRepository) Find(ctx context.Context, page, limit int64) (*domain.Page[domain.Post], error) {
	return findPage[domain.Post](ctx, r.coll, bson.M{}, page, limit)
}

func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PostRepository) FindByIDAndOwner(ctx context.Context, id, user primitive.ObjectID) (*domain.Post, error) {
	return r.findOne(ctx, bson.M{"_id": id, "user": user})
}

func (r *PostRepository) findOne(ctx context.Context, filter bson.M) (*domain.Post, error) {
	post := &domain.Post{}
	err := r.coll.FindOne(ctx, filter).Decode(post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	post.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":     post.Title,
		"body":      post.Body,
		"updatedAt": post.UpdatedAt,
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": post.ID, "user": post.User}, update); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id, user primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user": user}); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
