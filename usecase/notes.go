package usecase

import (
	"context"
	"errors"
	"fmt"

	"inotebook/model"
	"inotebook/repository"
	"inotebook/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoteFields carries note input. Empty strings mean "not provided", so an
// update cannot clear a field.
type NoteFields struct {
	Title       string
	Description string
	Tag         string
}

func (f NoteFields) partial() model.NoteUpdate {
	var u model.NoteUpdate
	if f.Title != "" {
		u.Title = &f.Title
	}
	if f.Description != "" {
		u.Description = &f.Description
	}
	if f.Tag != "" {
		u.Tag = &f.Tag
	}
	return u
}

type NotesService struct {
	NotesRepo NotesRepository
}

func NewNotesService(repo NotesRepository) *NotesService {
	return &NotesService{NotesRepo: repo}
}

func (s *NotesService) ListNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidIdentity
	}

	notes, err := s.NotesRepo.GetUserNotes(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	return notes, nil
}

func (s *NotesService) CreateNote(ctx context.Context, userID string, in NoteFields) (*model.Note, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidIdentity
	}

	note := &model.Note{
		User:        owner,
		Title:       in.Title,
		Description: in.Description,
		Tag:         in.Tag,
	}
	if err := s.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// UpdateNote applies the non-empty fields of in to the caller's note.
func (s *NotesService) UpdateNote(ctx context.Context, userID, noteID string, in NoteFields) (*model.Note, error) {
	id, err := s.authorize(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	note, err := s.NotesRepo.UpdateNote(ctx, id, in.partial())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("update note: %w", err)
	}

	utils.TrackNoteOperation("update")
	return note, nil
}

func (s *NotesService) DeleteNote(ctx context.Context, userID, noteID string) (*model.Note, error) {
	id, err := s.authorize(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	note, err := s.NotesRepo.DeleteNote(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("delete note: %w", err)
	}

	utils.TrackNoteOperation("delete")
	return note, nil
}

// authorize loads the note and checks that userID owns it.
func (s *NotesService) authorize(ctx context.Context, userID, noteID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return primitive.NilObjectID, ErrNoteNotFound
	}

	note, err := s.NotesRepo.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return primitive.NilObjectID, ErrNoteNotFound
		}
		return primitive.NilObjectID, fmt.Errorf("find note: %w", err)
	}

	if note.User.Hex() != userID {
		utils.TrackError("auth", "note_not_owned")
		return primitive.NilObjectID, ErrNotAllowed
	}
	return id, nil
}
