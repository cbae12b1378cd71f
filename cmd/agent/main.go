package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/aruneshvv/review-intel/db"
	"github.com/aruneshvv/review-intel/internal/handler"
	"github.com/aruneshvv/review-intel/internal/model"
	"github.com/aruneshvv/review-intel/internal/repository"
	"github.com/aruneshvv/review-intel/internal/session"
	"github.com/aruneshvv/review-intel/pkg/llm"
	"github.com/aruneshvv/review-intel/pkg/reddit"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var analyzer llm.Analyzer
	if url := os.Getenv("ANALYZER_URL"); url != "" {
		analyzer = llm.NewRemoteClient(url)
	} else if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		analyzer = llm.NewAnthropicClient(key)
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		analyzer = llm.NewOpenAIClient(key)
	}

	if analyzer == nil {
		log.Fatal("no analyzer configured, set ANALYZER_URL or an API key")
	}

	var store session.StateStore
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		store = session.NewRedisStore(db.Redis, db.StateKey)
	}

	sess := session.New(reddit.NewClient(), analyzer, store)

	var analysisStore handler.AnalysisStore
	if os.Getenv("DATABASE_URL") != "" {
		if err := db.Connect(); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()

		analysisRepo := repository.NewAnalysisRepository(db.DB)
		analysisStore = analysisRepo

		sess.Subscribe(func(state model.AnalysisState) {
			if state.Status != model.StatusSuccess || state.Result == nil {
				return
			}
			record := model.AnalysisRecord{
				Product:    state.Product,
				Score:      state.Result.Score,
				Sentiment:  state.Result.Sentiment,
				Summary:    state.Result.Summary,
				Positives:  state.Result.Positives,
				Negatives:  state.Result.Negatives,
				SampleSize: state.Result.SampleSize,
			}
			if err := analysisRepo.SaveAnalysis(&record); err != nil {
				slog.Error("error saving analysis", "product", record.Product, "error", err)
			}
		})
	}

	sess.Subscribe(func(state model.AnalysisState) {
		slog.Info("state changed", "status", state.Status, "product", state.Product)
	})

	sessionHandler := handler.NewSessionHandler(sess, analysisStore)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
	}))

	r.GET("/state", sessionHandler.GetState)
	r.POST("/analyze", sessionHandler.StartAnalysis)
	r.GET("/analyses", sessionHandler.GetAnalyses)
	r.GET("/analyses/latest", sessionHandler.GetLatestAnalysis)
	r.GET("/health", sessionHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
