package users

import (
	"context"
	"errors"

	"github.com/fatteme/MovieSwipe/internal/auth"
	"github.com/fatteme/MovieSwipe/internal/logx"
	"github.com/fatteme/MovieSwipe/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// AddUser registers a local user with a bcrypt-hashed password.
func AddUser(db *mongodb.DB, ctx context.Context, req NewUserRequest) (UserResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return UserResponse{}, err
	}

	user := mongodb.UserDb{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	newUser, err := db.CreateUser(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return UserResponse{}, ErrEmailAlreadyInUse
		}
		return UserResponse{}, err
	}

	return MapDbUserToApiUserResponse(newUser), nil
}

func GetUserDbByEmail(db *mongodb.DB, ctx context.Context, email string) (mongodb.UserDb, error) {
	userDb, err := db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return mongodb.UserDb{}, ErrUserNotFound
		}
		return mongodb.UserDb{}, err
	}
	return userDb, nil
}

// FindOrCreateGoogleUser looks a user up by Google id, creating the record on
// first login and refreshing name/email when Google reports a change.
func FindOrCreateGoogleUser(db *mongodb.DB, ctx context.Context, info auth.GoogleUserInfo) (mongodb.UserDb, error) {
	logger := logx.FromContext(ctx)

	userDb, err := db.GetUserByGoogleId(ctx, info.GoogleId)
	if err != nil {
		if !errors.Is(err, mongodb.ErrRecordNotFound) {
			return mongodb.UserDb{}, err
		}

		newUser := mongodb.UserDb{
			GoogleId: info.GoogleId,
			Name:     info.Name,
			Email:    info.Email,
			Picture:  info.Picture,
		}
		created, err := db.CreateUser(ctx, newUser)
		if err != nil {
			return mongodb.UserDb{}, err
		}
		logger.Printf("New user created: %s", created.Email)
		return created, nil
	}

	if userDb.Name != info.Name || userDb.Email != info.Email || userDb.Picture != info.Picture {
		userDb.Name = info.Name
		userDb.Email = info.Email
		userDb.Picture = info.Picture
		updated, err := db.UpdateUser(ctx, userDb)
		if err != nil {
			return mongodb.UserDb{}, err
		}
		logger.Printf("User updated: %s", updated.Email)
		return updated, nil
	}

	return userDb, nil
}

func GetAllUsers(db *mongodb.DB, ctx context.Context) ([]UserResponse, error) {
	allUsers, err := db.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(allUsers))
	for _, u := range allUsers {
		responses = append(responses, MapDbUserToApiUserResponse(u))
	}
	return responses, nil
}

func BuildLoginResponse(userDb mongodb.UserDb, token string) LoginResponse {
	return LoginResponse{
		AccessToken: token,
		User:        MapDbUserToApiUserResponse(userDb),
	}
}
