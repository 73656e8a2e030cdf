package testutils

import (
	"context"
	"sync"
	"time"

	"inotebook/model"
	"inotebook/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UsersRepo is an in-memory stand-in for repository.UsersRepo.
type UsersRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User

	// Err, when set, is returned by every call.
	Err error
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (r *UsersRepo) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}

	user.ID = primitive.NewObjectID()
	if user.Date.IsZero() {
		user.Date = time.Now().UTC()
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *UsersRepo) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UsersRepo) FindUserByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *u
	return &found, nil
}

func (r *UsersRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// NotesRepo is an in-memory stand-in for repository.NotesRepo. Notes are
// listed in insertion order.
type NotesRepo struct {
	mu    sync.Mutex
	notes []*model.Note

	// Err, when set, is returned by every call.
	Err error
}

func NewNotesRepo() *NotesRepo {
	return &NotesRepo{}
}

func (r *NotesRepo) CreateNote(_ context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	note.ID = primitive.NewObjectID()
	if note.Date.IsZero() {
		note.Date = time.Now().UTC()
	}
	stored := *note
	r.notes = append(r.notes, &stored)
	return nil
}

func (r *NotesRepo) GetUserNotes(_ context.Context, owner primitive.ObjectID) ([]*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*model.Note, 0)
	for _, n := range r.notes {
		if n.User == owner {
			found := *n
			out = append(out, &found)
		}
	}
	return out, nil
}

func (r *NotesRepo) GetNote(_ context.Context, id primitive.ObjectID) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	if i := r.index(id); i >= 0 {
		found := *r.notes[i]
		return &found, nil
	}
	return nil, repository.ErrNotFound
}

func (r *NotesRepo) UpdateNote(_ context.Context, id primitive.ObjectID, update model.NoteUpdate) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	i := r.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	update.Apply(r.notes[i])
	found := *r.notes[i]
	return &found, nil
}

func (r *NotesRepo) DeleteNote(_ context.Context, id primitive.ObjectID) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	i := r.index(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	deleted := r.notes[i]
	r.notes = append(r.notes[:i], r.notes[i+1:]...)
	return deleted, nil
}

func (r *NotesRepo) index(id primitive.ObjectID) int {
	for i, n := range r.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Revoker records revoked tokens in memory.
type Revoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time

	Err error
}

func NewRevoker() *Revoker {
	return &Revoker{revoked: make(map[string]time.Time)}
}

func (r *Revoker) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.revoked[token] = expiresAt
	return nil
}

func (r *Revoker) IsRevoked(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return false, r.Err
	}
	_, ok := r.revoked[token]
	return ok, nil
}
