package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/youruser/cardsheet/internal/api"
	imagepkg "github.com/youruser/cardsheet/internal/image"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found:", err)
	}

	cfg := imagepkg.DefaultSheetConfig()
	fontFile, err := imagepkg.ResolveFontFile(os.Getenv("CARDSHEET_FONT"), ".")
	if err != nil {
		log.Fatal(err)
	}
	cfg.FontFile = fontFile
	f, err := imagepkg.LoadFont(cfg.FontFile)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(cfg, f))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting preview server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
