package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Note struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Tag         string             `bson:"tag" json:"tag"`
	Date        time.Time          `bson:"date" json:"date"`
}

// NoteUpdate is a partial update. Nil fields are left unchanged.
type NoteUpdate struct {
	Title       *string
	Description *string
	Tag         *string
}

func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Tag == nil
}

// Apply copies the set fields onto n.
func (u NoteUpdate) Apply(n *Note) {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Description != nil {
		n.Description = *u.Description
	}
	if u.Tag != nil {
		n.Tag = *u.Tag
	}
}
