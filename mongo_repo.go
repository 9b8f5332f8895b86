package chatauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	nameIndex  = "name_1"
	emailIndex = "email_1"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

type dbUser struct {
	ID        ID        `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"date"`
}

func NewMongoUserRepository(c *mongo.Collection) Repository {
	return &mongoUserRepository{collection: c}
}

// EnsureUserIndexes creates the unique indexes that back the
// registration availability checks. Concurrent inserts with the same
// name or email lose against these, not against the pre-check.
func EnsureUserIndexes(ctx context.Context, c *mongo.Collection) error {
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(nameIndex),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(emailIndex),
		},
	})
	return err
}

func (m *mongoUserRepository) FindBy(ctx context.Context, field Field, value string) (*User, error) {
	var u dbUser
	sr := m.collection.FindOne(ctx, bson.M{mongoKey(field): value})
	if err := sr.Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	user := userFromDBUser(u)
	return &user, nil
}

func (m *mongoUserRepository) Store(ctx context.Context, u *User) error {
	dbu := dbUserFromUser(u)
	if _, err := m.collection.InsertOne(ctx, &dbu); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (m *mongoUserRepository) Update(ctx context.Context, u *User) error {
	dbu := dbUserFromUser(u)
	if _, err := m.collection.ReplaceOne(ctx, bson.M{"_id": dbu.ID}, dbu); err != nil {
		return translateWriteError(err)
	}
	return nil
}

// translateWriteError maps a duplicate-key rejection to the field
// whose unique index raised it. Raw driver errors never escape.
func translateWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		switch {
		case strings.Contains(err.Error(), emailIndex):
			return ErrDuplicateEmail
		default:
			return ErrDuplicateName
		}
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func mongoKey(field Field) string {
	switch field {
	case ByName:
		return "name"
	case ByEmail:
		return "email"
	case ByID:
		return "_id"
	}
	panic(fmt.Sprintf("unknown lookup field: %d", field))
}

func dbUserFromUser(u *User) dbUser {
	return dbUser{u.ID, u.Name, u.Email, u.Password, u.CreatedAt}
}

func userFromDBUser(u dbUser) User {
	return User{u.ID, u.Name, u.Email, u.Password, u.CreatedAt}
}
