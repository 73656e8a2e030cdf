package handler

import (
	"log/slog"

	"inotebook/dto"
	"inotebook/middleware"
	"inotebook/usecase"
	"inotebook/utils"

	"github.com/gin-gonic/gin"
)

func FetchAllNotesHandler(c *gin.Context, notes *usecase.NotesService, log *slog.Logger) {
	list, err := notes.ListNotes(c, middleware.UserID(c))
	if err != nil {
		writeError(c, log, err, msgInternal)
		return
	}

	utils.Success(c, list)
}

func AddNoteHandler(c *gin.Context, notes *usecase.NotesService, log *slog.Logger) {
	var req dto.NoteRequest
	if err := utils.BindJSON(c, &req); err != nil {
		writeValidationError(c, err, dto.NoteMessages)
		return
	}

	note, err := notes.CreateNote(c, middleware.UserID(c), req.Fields())
	if err != nil {
		writeError(c, log, err, msgInternal)
		return
	}

	utils.Created(c, note)
}

func UpdateNoteHandler(c *gin.Context, notes *usecase.NotesService, log *slog.Logger) {
	var req dto.UpdateNoteRequest
	if err := utils.BindJSON(c, &req); err != nil {
		writeValidationError(c, err, nil)
		return
	}

	note, err := notes.UpdateNote(c, middleware.UserID(c), c.Param("id"), req.Fields())
	if err != nil {
		writeError(c, log, err, msgInternal)
		return
	}

	utils.Success(c, note)
}

func DeleteNoteHandler(c *gin.Context, notes *usecase.NotesService, log *slog.Logger) {
	note, err := notes.DeleteNote(c, middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, log, err, msgInternal)
		return
	}

	utils.Success(c, dto.DeleteNoteResponse{
		Success: "Note has been deleted",
		Note:    note,
	})
}
