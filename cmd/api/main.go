package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/bookably/appointment-api/internal/config"
	dbpkg "github.com/bookably/appointment-api/internal/db"
	"github.com/bookably/appointment-api/internal/middleware"
	"github.com/bookably/appointment-api/internal/routes"
	"github.com/bookably/appointment-api/internal/tokenstore"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var tokens tokenstore.Store
	if opts, err := redis.ParseURL(cfg.RedisURL); err != nil {
		log.Printf("invalid REDIS_URL, logout revocation disabled: %v", err)
	} else {
		tokens = tokenstore.NewRedisStore(redis.NewClient(opts))
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, tokens, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
