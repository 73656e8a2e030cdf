package dto

import (
	"inotebook/model"
	"inotebook/usecase"
)

type NoteRequest struct {
	Title       string `json:"title" binding:"min=3"`
	Description string `json:"description" binding:"min=5"`
	Tag         string `json:"tag"`
}

var NoteMessages = map[string]string{
	"title":       "Enter a valid title",
	"description": "Description must be atleast 5 characters",
}

func (r NoteRequest) Fields() usecase.NoteFields {
	return usecase.NoteFields{
		Title:       r.Title,
		Description: r.Description,
		Tag:         r.Tag,
	}
}

// UpdateNoteRequest is not validated. Empty fields are left unchanged.
type UpdateNoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
}

func (r UpdateNoteRequest) Fields() usecase.NoteFields {
	return usecase.NoteFields{
		Title:       r.Title,
		Description: r.Description,
		Tag:         r.Tag,
	}
}

type DeleteNoteResponse struct {
	Success string      `json:"Success"`
	Note    *model.Note `json:"note"`
}
