package services

// In-memory fakes for the ports exercised by the service tests.

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/todoapp/api/internal/core/domain"
)

type fakeUserRepo struct {
	users []*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeCache struct {
	entries map[string][]byte
	ttls    map[string]time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	f.entries[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.entries, key)
	delete(f.ttls, key)
	return nil
}

func scopeMatches(owner, caller primitive.ObjectID, scope domain.OwnerScope) bool {
	switch scope {
	case domain.OwnerScopeOwned:
		return owner == caller
	case domain.OwnerScopeNotOwned:
		return owner != caller
	default:
		return true
	}
}

func pageOf[T any](items []T, page, limit int64) *domain.Page[T] {
	total := int64(len(items))
	pages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return &domain.Page[T]{Items: items[start:end], Page: page, Pages: pages, Total: total}
}

type fakeTodoRepo struct {
	todos []*domain.Todo
}

func (f *fakeTodoRepo) Save(_ context.Context, todo *domain.Todo) error {
	todo.ID = primitive.NewObjectID()
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = todo.CreatedAt
	stored := *todo
	f.todos = append(f.todos, &stored)
	return nil
}

func (f *fakeTodoRepo) Find(_ context.Context, user primitive.ObjectID, scope domain.OwnerScope, page, limit int64) (*domain.Page[domain.Todo], error) {
	var matched []domain.Todo
	for _, t := range f.todos {
		if scopeMatches(t.User, user, scope) {
			matched = append(matched, *t)
		}
	}
	return pageOf(matched, page, limit), nil
}

func (f *fakeTodoRepo) FindByID(_ context.Context, id, user primitive.ObjectID, scope domain.OwnerScope) (*domain.Todo, error) {
	for _, t := range f.todos {
		if t.ID == id && scopeMatches(t.User, user, scope) {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTodoRepo) Update(_ context.Context, todo *domain.Todo) error {
	for i, t := range f.todos {
		if t.ID == todo.ID {
			stored := *todo
			stored.UpdatedAt = time.Now()
			f.todos[i] = &stored
			return nil
		}
	}
	return nil
}

func (f *fakeTodoRepo) Delete(_ context.Context, id, user primitive.ObjectID) error {
	for i, t := range f.todos {
		if t.ID == id && t.User == user {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePostRepo struct {
	posts []*domain.Post
}

func (f *fakePostRepo) Save(_ context.Context, post *domain.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	stored := *post
	f.posts = append(f.posts, &stored)
	return nil
}

func (f *fakePostRepo) Find(_ context.Context, page, limit int64) (*domain.Page[domain.Post], error) {
	var all []domain.Post
	for _, p := range f.posts {
		all = append(all, *p)
	}
	return pageOf(all, page, limit), nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) FindByIDAndOwner(_ context.Context, id, user primitive.ObjectID) (*domain.Post, error) {
	for _, p := range f.posts {
		if p.ID == id && p.User == user {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) Update(_ context.Context, post *domain.Post) error {
	for i, p := range f.posts {
		if p.ID == post.ID {
			stored := *post
			f.posts[i] = &stored
			return nil
		}
	}
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id, user primitive.ObjectID) error {
	for i, p := range f.posts {
		if p.ID == id && p.User == user {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCommentRepo struct {
	comments []*domain.Comment
}

func (f *fakeCommentRepo) Save(_ context.Context, comment *domain.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	stored := *comment
	f.comments = append(f.comments, &stored)
	return nil
}

func (f *fakeCommentRepo) FindByPost(_ context.Context, post primitive.ObjectID, page, limit int64) (*domain.Page[domain.Comment], error) {
	var matched []domain.Comment
	for _, c := range f.comments {
		if c.Post == post {
			matched = append(matched, *c)
		}
	}
	return pageOf(matched, page, limit), nil
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Comment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCommentRepo) FindByIDAndOwner(_ context.Context, id, user primitive.ObjectID) (*domain.Comment, error) {
	for _, c := range f.comments {
		if c.ID == id && c.User == user {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment *domain.Comment) error {
	for i, c := range f.comments {
		if c.ID == comment.ID {
			stored := *comment
			f.comments[i] = &stored
			return nil
		}
	}
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id, user primitive.ObjectID) error {
	for i, c := range f.comments {
		if c.ID == id && c.User == user {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return nil
}
