package main

import (
	"context"
	"os"
	"strconv"
	"time"

	dbadapter "socialorbit/internal/adapters/database"
	"socialorbit/internal/adapters/httpapi"
	redisadapter "socialorbit/internal/adapters/redis"
	"socialorbit/internal/config"
	"socialorbit/internal/core/post"
	postapp "socialorbit/internal/core/post/service"
	"socialorbit/internal/core/user"
	userapp "socialorbit/internal/core/user/service"
	"socialorbit/internal/workers"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&post.Like{},
		&post.Comment{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	jwtKey := []byte(os.Getenv("JWT_SECRET"))

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	feedCache := redisadapter.NewFeedCacheRedis(config.RedisClient)
	userSvc := userapp.NewUserService(userRepo, jwtKey, config.Logger)
	postSvc := postapp.NewPostService(postRepo, feedCache, config.Logger)
	r := httpapi.SetupRoutes(userSvc, postSvc, jwtKey)

	warmInterval := 30 * time.Second
	if s := os.Getenv("FEED_WARM_INTERVAL"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			warmInterval = time.Duration(secs) * time.Second
		}
	}

	warmer := workers.NewFeedWarmer(postSvc, warmInterval, config.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go warmer.Run(ctx)

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
