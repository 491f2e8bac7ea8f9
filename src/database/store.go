package database

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Logical dataset keys. Each names one whole-collection JSON blob.
const (
	KeySessions   = "sessions_data"
	KeyBiometrics = "biometrics_data"
	KeyEmployees  = "employees_data"
	KeyCheckIns   = "checkins_data"
)

// RecordStore persists whole datasets as single JSON values under a logical
// key. There are no partial updates and no transactions: every mutation is a
// full read-modify-write, and concurrent writers race last-write-wins.
type RecordStore interface {
	// Load unmarshals the value under key into dst. The boolean reports
	// whether the key existed.
	Load(ctx context.Context, key string, dst any) (bool, error)
	// Save marshals v and overwrites the value under key.
	Save(ctx context.Context, key string, v any) error
}

// RedisStore keeps each dataset as a JSON string value.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, raw, 0).Err()
}

// MongoStore keeps each dataset as one document {_id: key, data: <json>} in
// a single collection.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

type datasetDoc struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

func (s *MongoStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	var doc datasetDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(doc.Data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MongoStore) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.collection.ReplaceOne(ctx,
		bson.M{"_id": key},
		datasetDoc{ID: key, Data: raw},
		options.Replace().SetUpsert(true))
	return err
}

// MemoryStore is the in-process store used by tests.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Load(_ context.Context, key string, dst any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[key] = raw
	return nil
}
