package handler

import (
	"log/slog"
	"time"

	"inotebook/dto"
	"inotebook/middleware"
	"inotebook/usecase"
	"inotebook/utils"

	"github.com/gin-gonic/gin"
)

func CreateUserHandler(c *gin.Context, users *usecase.UserService, log *slog.Logger) {
	var req dto.RegisterRequest
	if err := utils.BindJSON(c, &req); err != nil {
		writeValidationError(c, err, dto.RegisterMessages)
		return
	}

	token, err := users.Register(c, req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, log, err, msgRegistrationFail)
		return
	}

	utils.TrackRegistration()
	utils.Created(c, dto.AuthResponse{Success: true, AuthToken: token})
}

func LoginHandler(c *gin.Context, users *usecase.UserService, log *slog.Logger) {
	var req dto.LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		writeValidationError(c, err, dto.LoginMessages)
		return
	}

	token, err := users.Login(c, req.Email, req.Password)
	if err != nil {
		writeError(c, log, err, msgInternal)
		return
	}

	utils.Success(c, dto.AuthResponse{Success: true, AuthToken: token})
}

// GetUserHandler returns the caller's profile. A valid token whose user no
// longer exists is treated as an internal fault.
func GetUserHandler(c *gin.Context, users *usecase.UserService, log *slog.Logger) {
	user, err := users.GetUser(c, middleware.UserID(c))
	if err != nil {
		writeError(c, log, err, msgInternal)
		return
	}

	utils.Success(c, dto.ToUserResponse(user))
}

func LogoutHandler(c *gin.Context, users *usecase.UserService, log *slog.Logger) {
	var expiresAt time.Time
	if v, ok := c.Get(middleware.ContextTokenExpiresAt); ok {
		expiresAt, _ = v.(time.Time)
	}

	if err := users.Logout(c, c.GetString(middleware.ContextAuthToken), expiresAt); err != nil {
		writeError(c, log, err, msgInternal)
		return
	}

	utils.Success(c, dto.LogoutResponse{Success: true})
}
