package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inotebook/model"
	"inotebook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const NotesCollection = "notes"

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func NewNotesRepo(db *mongo.Database) *NotesRepo {
	return &NotesRepo{
		MongoCollection: db.Collection(NotesCollection),
	}
}

// CreateNote inserts note and sets its store-assigned ID.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", NotesCollection)
	defer timer.ObserveDuration()

	if note.User.IsZero() {
		return errors.New("note owner is required")
	}
	if note.Date.IsZero() {
		note.Date = time.Now().UTC()
	}

	result, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return fmt.Errorf("insert note: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert note: unexpected id type %T", result.InsertedID)
	}
	note.ID = id
	return nil
}

// GetUserNotes returns the owner's notes in insertion order.
func (r *NotesRepo) GetUserNotes(ctx context.Context, owner primitive.ObjectID) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", NotesCollection)
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user": owner}, opts)
	if err != nil {
		utils.TrackError("database", "note_lookup_error")
		return nil, fmt.Errorf("find notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := make([]*model.Note, 0)
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

func (r *NotesRepo) GetNote(ctx context.Context, id primitive.ObjectID) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", NotesCollection)
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, fmt.Errorf("find note: %w", err)
	}
	return &note, nil
}

// UpdateNote applies the set fields of update and returns the stored note
// after the change.
func (r *NotesRepo) UpdateNote(ctx context.Context, id primitive.ObjectID, update model.NoteUpdate) (*model.Note, error) {
	if update.IsEmpty() {
		return r.GetNote(ctx, id)
	}

	timer := utils.TrackDBOperation("update", NotesCollection)
	defer timer.ObserveDuration()

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Tag != nil {
		set["tag"] = *update.Tag
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_update_failed")
		return nil, fmt.Errorf("update note: %w", err)
	}
	return &note, nil
}

// DeleteNote removes the note and returns what was deleted.
func (r *NotesRepo) DeleteNote(ctx context.Context, id primitive.ObjectID) (*model.Note, error) {
	timer := utils.TrackDBOperation("delete", NotesCollection)
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_deletion_failed")
		return nil, fmt.Errorf("delete note: %w", err)
	}
	return &note, nil
}
