package store

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB collection, one record per
// document name. It exists so a deployment can move off the local filesystem
// without touching the content service; selected by MONGODB_URI at startup.
type MongoStore struct {
	col *mongo.Collection
}

type mongoDoc struct {
	Name      string      `bson:"name"`
	Data      interface{} `bson:"data"`
	UpdatedAt time.Time   `bson:"updatedAt"`
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoStore{col: col}
}

func (s *MongoStore) Read(ctx context.Context, name string) (json.RawMessage, error) {
	var d mongoDoc
	if err := s.col.FindOne(ctx, bson.M{"name": name}).Decode(&d); err != nil {
		return nil, ErrNotFound
	}
	b, err := json.Marshal(d.Data)
	if err != nil {
		return nil, ErrNotFound
	}
	return json.RawMessage(b), nil
}

func (s *MongoStore) Write(ctx context.Context, name string, data json.RawMessage) error {
	var payload interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	upd := bson.M{"$set": mongoDoc{Name: name, Data: payload, UpdatedAt: time.Now().UTC()}}
	opts := options.Update().SetUpsert(true)
	_, err := s.col.UpdateOne(ctx, bson.M{"name": name}, upd, opts)
	return err
}

func (s *MongoStore) Ensure(ctx context.Context, name string, initial interface{}) error {
	n, err := s.col.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	b, err := json.Marshal(initial)
	if err != nil {
		return err
	}
	return s.Write(ctx, name, b)
}
