package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/admin-users/internal/core/domain"
)

const usersCollection = "users"

// UserStore reads user records from the users collection. Records are
// returned in _id order, which for ObjectIDs is insertion order.
type UserStore struct {
	coll *mongo.Collection
	log  zerolog.Logger
}

func NewUserStore(db *mongo.Database, log zerolog.Logger) *UserStore {
	return &UserStore{coll: db.Collection(usersCollection), log: log}
}

type mongoUser struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash,omitempty"`
	Role          string             `bson:"role,omitempty"`
	Company       string             `bson:"company,omitempty"`
	TaxID         string             `bson:"tax_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	EmailVerified bool               `bson:"email_verified"`
}

func (s *UserStore) GetAll(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		if d.Role == "" {
			s.log.Warn().Str("user_id", d.ID.Hex()).Msg("user record without role, treating as user")
		}
		users = append(users, toDomainUser(d))
	}
	return users, nil
}

// EnsureIndexes creates the indexes the users collection relies on.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func toDomainUser(d mongoUser) domain.User {
	return domain.User{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		Role:          d.Role,
		Company:       d.Company,
		TaxID:         d.TaxID,
		CreatedAt:     d.CreatedAt.UTC(),
		EmailVerified: d.EmailVerified,
	}
}
