package dto

import (
	"time"

	"inotebook/model"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"min=3"`
	Email    string `json:"email" binding:"email"`
	Password string `json:"password" binding:"min=5"`
}

// RegisterMessages maps each RegisterRequest field to the message shown
// when it fails validation.
var RegisterMessages = map[string]string{
	"name":     "Enter a valid Name",
	"email":    "Enter a valid Email",
	"password": "Password must be atleast 5 characters",
}

type LoginRequest struct {
	Email    string `json:"email" binding:"email"`
	Password string `json:"password" binding:"required"`
}

var LoginMessages = map[string]string{
	"email":    "Enter a valid Email",
	"password": "Password Cannot be blank",
}

type AuthResponse struct {
	Success   bool   `json:"success"`
	AuthToken string `json:"authToken"`
}

// UserProfile is the public view of a user. It never carries the id or
// the password hash.
type UserProfile struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

type UserResponse struct {
	Success bool        `json:"success"`
	User    UserProfile `json:"user"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		Success: true,
		User: UserProfile{
			Name:  user.Name,
			Email: user.Email,
			Date:  user.Date,
		},
	}
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
