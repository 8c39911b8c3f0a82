package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is never serialized with its password hash. Role is one of the
// role package constants.
type Account struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password"`
	Role         string             `json:"role" bson:"role"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type PublicAccount struct {
	Username string `json:"username" bson:"username"`
	Email    string `json:"email" bson:"email"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"notblank"`
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank,maxbytes=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

type LoginResult struct {
	Message    string
	RedirectTo string
}
