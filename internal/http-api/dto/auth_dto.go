package dto

import "gamecomment/internal/http-api/models"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token   string   `json:"token"`
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromModelToUserInfo(admin *models.AdminUser) UserInfo {
	return UserInfo{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	}
}
