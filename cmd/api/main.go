package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gadget-galaxy/internal/auth"
	"gadget-galaxy/internal/clock"
	"gadget-galaxy/internal/config"
	"gadget-galaxy/internal/database"
	"gadget-galaxy/internal/media"
	"gadget-galaxy/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	tokens := auth.NewService(cfg.AccessTokenSecret, cfg.TokenTTL)

	uploader, err := media.NewCloudinaryUploader(cfg.CloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatalln("could not configure media uploader:", err)
	}

	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, db, tokens, uploader, clock.Real{})

	log.Println("Gadget Galaxy is running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalln("server stopped:", err)
	}
}
