package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/pharmanet/medsupply-api/internal/auth"
	"github.com/pharmanet/medsupply-api/internal/config"
	dbpkg "github.com/pharmanet/medsupply-api/internal/db"
	"github.com/pharmanet/medsupply-api/internal/middleware"
	"github.com/pharmanet/medsupply-api/internal/routes"
	"github.com/pharmanet/medsupply-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	assets := storage.NewS3Store(cfg)

	// The blacklist must live in storage shared by every instance.
	// Redis when configured, the database table otherwise.
	var blacklist auth.BlacklistStore
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		blacklist = auth.NewRedisBlacklistStore(redis.NewClient(opt))
	} else {
		store := auth.NewGormBlacklistStore(db)
		blacklist = store

		go func() {
			for range time.Tick(time.Hour) {
				if err := store.Prune(context.Background()); err != nil {
					log.Println("blacklist prune:", err)
				}
			}
		}()
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, assets, blacklist)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
