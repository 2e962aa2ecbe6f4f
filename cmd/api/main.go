package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	redis "github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/agendopro/agendopro-api/internal/audit"
	"github.com/agendopro/agendopro-api/internal/config"
	dbpkg "github.com/agendopro/agendopro-api/internal/db"
	"github.com/agendopro/agendopro-api/internal/plancron"
	"github.com/agendopro/agendopro-api/internal/routes"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, rdb)

	sweeper := plancron.NewSweeper(db, audit.NewDispatcher(audit.New(db)))
	if err := sweeper.Start(); err != nil {
		log.Fatalf("failed to start plan sweeper: %v", err)
	}
	defer sweeper.Stop()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
