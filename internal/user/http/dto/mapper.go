// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"github.com/studybuddy/certtracker/internal/user/domain"
	"github.com/studybuddy/certtracker/internal/user/usecase"
)

// ToRegisterUserInput converts a RegisterRequest DTO to a RegisterUserInput use case input
func ToRegisterUserInput(req RegisterRequest) usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
		Industry:  req.Industry,
		UserRole:  req.UserRole,
	}
}

// ToLoginInput converts a LoginRequest DTO to a LoginInput use case input
func ToLoginInput(req LoginRequest) usecase.LoginInput {
	return usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}
}

// ToProfileUpdate converts an UpdateProfileRequest DTO to a domain ProfileUpdate
func ToProfileUpdate(req UpdateProfileRequest) domain.ProfileUpdate {
	return domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Industry:  req.Industry,
		UserRole:  req.UserRole,
		Bio:       req.Bio,
	}
}

// ToAuthResponse converts an AuthResult to an AuthResponse DTO
func ToAuthResponse(message string, result *usecase.AuthResult) AuthResponse {
	return AuthResponse{
		Message:  message,
		UserID:   result.User.ID,
		Username: result.User.Username,
		Token:    result.Token,
	}
}

// ToUserResponse converts a domain User model to a UserResponse DTO.
// This enforces the boundary between internal domain models and external API contracts.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Industry:  user.Industry,
		UserRole:  user.UserRole,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
