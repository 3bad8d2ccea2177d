package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/ports"
)

func newCommentService(t *testing.T) (ports.CommentService, *fakeCommentRepo, *fakePostRepo) {
	t.Helper()
	comments := &fakeCommentRepo{}
	posts := &fakePostRepo{}
	return NewCommentService(comments, posts), comments, posts
}

func TestCommentSaveRequiresPost(t *testing.T) {
	svc, _, _ := newCommentService(t)

	_, err := svc.Save(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(),
		ports.SaveCommentInput{Email: "a@example.com", Name: "a", Body: "hi"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommentSaveAndListByPost(t *testing.T) {
	svc, _, posts := newCommentService(t)
	owner := primitive.NewObjectID()
	post := seedPost(t, posts, owner)
	otherPost := seedPost(t, posts, owner)

	_, err := svc.Save(context.Background(), owner.Hex(), post.ID.Hex(),
		ports.SaveCommentInput{Email: "a@example.com", Name: "a", Body: "first"})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), owner.Hex(), otherPost.ID.Hex(),
		ports.SaveCommentInput{Email: "a@example.com", Name: "a", Body: "elsewhere"})
	require.NoError(t, err)

	page, err := svc.ListByPost(context.Background(), post.ID.Hex(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "first", page.Items[0].Body)
	assert.Equal(t, post.ID, page.Items[0].Post)
}

func TestCommentPartialUpdate(t *testing.T) {
	svc, _, posts := newCommentService(t)
	owner := primitive.NewObjectID()
	post := seedPost(t, posts, owner)

	comment, err := svc.Save(context.Background(), owner.Hex(), post.ID.Hex(),
		ports.SaveCommentInput{Email: "a@example.com", Name: "a", Body: "hi"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), owner.Hex(), comment.ID.Hex(),
		ports.UpdateCommentInput{Body: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Body)
	assert.Equal(t, "a", updated.Name)
	assert.Equal(t, "a@example.com", updated.Email)
}

func TestCommentUpdateForeignOwnerIsNotFound(t *testing.T) {
	svc, _, posts := newCommentService(t)
	owner := primitive.NewObjectID()
	post := seedPost(t, posts, owner)

	comment, err := svc.Save(context.Background(), owner.Hex(), post.ID.Hex(),
		ports.SaveCommentInput{Email: "a@example.com", Name: "a", Body: "hi"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), primitive.NewObjectID().Hex(), comment.ID.Hex(),
		ports.UpdateCommentInput{Body: "hijack"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommentDeleteTwice(t *testing.T) {
	svc, _, posts := newCommentService(t)
	owner := primitive.NewObjectID()
	post := seedPost(t, posts, owner)

	comment, err := svc.Save(context.Background(), owner.Hex(), post.ID.Hex(),
		ports.SaveCommentInput{Email: "a@example.com", Name: "a", Body: "hi"})
	require.NoError(t, err)

	msg, err := svc.Delete(context.Background(), owner.Hex(), comment.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "comment deleted successfully", msg)

	_, err = svc.Delete(context.Background(), owner.Hex(), comment.ID.Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
