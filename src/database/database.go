package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	redisClient *redis.Client
	mongoClient *mongo.Client
	once        sync.Once
	connectErr  error

	// Store is the process-wide record store, set by Connect.
	Store RecordStore
)

// Connect loads the environment and wires the record store backend selected
// by STORE_BACKEND (redis by default, mongo for the document-store variant).
func Connect() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found")
	}

	once.Do(func() {
		switch os.Getenv("STORE_BACKEND") {
		case "mongo":
			connectErr = connectMongo()
		default:
			connectErr = connectRedis()
		}
	})

	return connectErr
}

func connectRedis() error {
	addr := os.Getenv("REDIS_URI")
	if addr == "" {
		addr = "localhost:6379"
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})

	if _, err := redisClient.Ping(context.TODO()).Result(); err != nil {
		return err
	}

	log.Println("Redis connected successfully")
	Store = NewRedisStore(redisClient)
	return nil
}

func connectMongo() error {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set")
	}

	var err error
	mongoClient, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return err
	}

	if err := mongoClient.Ping(context.TODO(), readpref.Primary()); err != nil {
		return err
	}

	log.Println("MongoDB connected successfully")
	Store = NewMongoStore(mongoClient.Database("benefits_event").Collection("datasets"))
	return nil
}
