package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/aruneshvv/review-intel/internal/handler"
	"github.com/aruneshvv/review-intel/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var analyzer llm.Analyzer
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		analyzer = llm.NewAnthropicClient(key)
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		analyzer = llm.NewOpenAIClient(key)
	}

	if analyzer == nil {
		log.Fatal("no analysis backend API key configured")
	}

	analyzeHandler := handler.NewAnalyzeHandler(analyzer)

	r := gin.Default()

	// The extension calls from an arbitrary origin.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
	}))

	r.POST("/analyze", analyzeHandler.Analyze)
	r.GET("/health", analyzeHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
