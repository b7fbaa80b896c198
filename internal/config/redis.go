package config

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// RedisClient is the shared Redis handle, used by the feed cache.
var RedisClient *redis.Client
var ctx = context.Background()

// InitRedis connects to Redis and verifies the connection.
func InitRedis() {
	redisDB, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		redisDB = 0
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		log.Fatal("Error connecting to Redis:", err)
	}
	log.Println("Connected to Redis")
}
