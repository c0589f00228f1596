package main

import (
	"fmt"
	"log"

	"github.com/seanhu1010/vue3-element-backend/configs"
	"github.com/seanhu1010/vue3-element-backend/middlewares"
	"github.com/seanhu1010/vue3-element-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())

	// serve uploaded files (dish images, avatars)
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
