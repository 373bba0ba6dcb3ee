package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/resolvetax/transcript-service/client"
	"github.com/resolvetax/transcript-service/config"
	"github.com/resolvetax/transcript-service/handler"
	"github.com/resolvetax/transcript-service/service"
	"github.com/resolvetax/transcript-service/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	sessions := client.NewSessionStore(cfg.SessionPath)
	portal := client.NewLogiqsClient(cfg.PortalBaseURL, sessions)
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)

	pdfProcessor := service.NewPDFProcessor()
	extractor := service.NewTextExtractor(pdfProcessor, tesseractClient)

	transcriptService := service.NewTranscriptService(portal, extractor, st)
	atService := service.NewATService(portal, extractor, st)
	tiService := service.NewTIService(portal, extractor, st)

	analysisHandler := handler.NewAnalysisHandler(transcriptService, atService, tiService)
	authHandler := handler.NewAuthHandler(sessions)
	feedbackHandler := handler.NewFeedbackHandler(st)

	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Transcript Analysis",
		})
	})

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/cookies", authHandler.StoreCookies)
		}

		analysis := api.Group("/analysis")
		{
			analysis.GET("/wi/debug/:caseID", analysisHandler.DebugWI)
			analysis.GET("/wi/:caseID", analysisHandler.AnalyzeWI)
			analysis.GET("/at/:caseID", analysisHandler.AnalyzeAT)
			analysis.GET("/ti/:caseID", analysisHandler.AnalyzeTI)
		}

		parse := api.Group("/parse")
		{
			parse.POST("/transcript", analysisHandler.ParseTranscript)
		}

		feedback := api.Group("/feedback")
		{
			feedback.POST("/extraction", feedbackHandler.RecordFeedback)
		}
	}

	log.Printf("Starting Transcript Analysis Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
