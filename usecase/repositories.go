package usecase

import (
	"context"
	"time"

	"inotebook/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UsersRepository is the credential store. Lookups return
// repository.ErrNotFound for missing users and CreateUser returns
// repository.ErrDuplicate for a taken email.
type UsersRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

// NotesRepository is the note store. Missing notes are reported as
// repository.ErrNotFound.
type NotesRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, owner primitive.ObjectID) ([]*model.Note, error)
	GetNote(ctx context.Context, id primitive.ObjectID) (*model.Note, error)
	UpdateNote(ctx context.Context, id primitive.ObjectID, update model.NoteUpdate) (*model.Note, error)
	DeleteNote(ctx context.Context, id primitive.ObjectID) (*model.Note, error)
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type TokenRevoker interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
}
