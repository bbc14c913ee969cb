package goregistration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

type dbUser struct {
	ID              ID        `bson:"_id"`
	Username        string    `bson:"username"`
	Email           string    `bson:"email"`
	Password        string    `bson:"password"`
	Inactive        bool      `bson:"inactive"`
	ActivationToken string    `bson:"activationToken"`
	CreatedAt       time.Time `bson:"createdAt"`
}

func NewMongoUserRepository(c *mongo.Collection) Repository {
	return &mongoUserRepository{collection: c}
}

// EnsureUserIndexes creates the unique index on email. The index is
// what arbitrates concurrent signups for the same address; run this
// before serving traffic.
func EnsureUserIndexes(ctx context.Context, c *mongo.Collection) error {
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating email index: %w", err)
	}
	return nil
}

func (m *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u dbUser
	sr := m.collection.FindOne(ctx, bson.M{"email": email})

	if errors.Is(sr.Err(), mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}

	if err := sr.Decode(&u); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}

	return userFromDBUser(u), nil
}

func (m *mongoUserRepository) Store(ctx context.Context, u *User) error {
	dbu := dbUserFromUser(u)
	if _, err := m.collection.InsertOne(ctx, &dbu); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrExistingEmail
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func dbUserFromUser(u *User) dbUser {
	return dbUser{u.ID, u.Username, u.Email, u.PasswordHash, u.Inactive, u.ActivationToken, u.CreatedAt}
}

func userFromDBUser(u dbUser) *User {
	return &User{u.ID, u.Username, u.Email, u.Password, u.Inactive, u.ActivationToken, u.CreatedAt}
}
