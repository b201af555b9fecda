package users

import "github.com/fatteme/MovieSwipe/internal/mongodb"

func MapDbUserToApiUserResponse(user mongodb.UserDb) UserResponse {
	return UserResponse{
		Id:      user.Id,
		Name:    user.Name,
		Email:   user.Email,
		Picture: user.Picture,
	}
}
