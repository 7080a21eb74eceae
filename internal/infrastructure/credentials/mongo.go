package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

const credentialsCollection = "console_credentials"

// MongoStore keeps one document per token, keyed "<profile>:<key>".
type MongoStore struct {
	coll    *mongo.Collection
	profile string
	log     zerolog.Logger
}

type credentialDoc struct {
	ID    string `bson:"_id"`
	Value string `bson:"value"`
}

func NewMongoStore(db *mongo.Database, profile string, log zerolog.Logger) *MongoStore {
	if profile == "" {
		profile = "default"
	}
	return &MongoStore{coll: db.Collection(credentialsCollection), profile: profile, log: log}
}

func (s *MongoStore) Save(ctx context.Context, sess domain.Session) error {
	models := []mongo.WriteModel{
		s.upsert(domain.AccessTokenKey, sess.AccessToken),
		s.upsert(domain.RefreshTokenKey, sess.RefreshToken),
	}
	if _, err := s.coll.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *MongoStore) AccessToken(ctx context.Context) (string, bool) {
	return s.get(ctx, domain.AccessTokenKey)
}

func (s *MongoStore) RefreshToken(ctx context.Context) (string, bool) {
	return s.get(ctx, domain.RefreshTokenKey)
}

func (s *MongoStore) Clear(ctx context.Context) error {
	filter := bson.M{"_id": bson.M{"$in": bson.A{s.id(domain.AccessTokenKey), s.id(domain.RefreshTokenKey)}}}
	if _, err := s.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *MongoStore) HasSession(ctx context.Context) bool {
	_, ok := s.AccessToken(ctx)
	return ok
}

func (s *MongoStore) get(ctx context.Context, name string) (string, bool) {
	var doc credentialDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": s.id(name)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.id(name)).Msg("credential read failed, treating as absent")
		return "", false
	}
	return doc.Value, true
}

func (s *MongoStore) upsert(name, value string) mongo.WriteModel {
	return mongo.NewUpdateOneModel().
		SetFilter(bson.M{"_id": s.id(name)}).
		SetUpdate(bson.M{"$set": bson.M{"value": value}}).
		SetUpsert(true)
}

func (s *MongoStore) id(name string) string {
	return s.profile + ":" + name
}
