package main

import (
	"log"

	"github.com/mohamedahmed66972007/test2025/internal/config"
	"github.com/mohamedahmed66972007/test2025/internal/database"
	"github.com/mohamedahmed66972007/test2025/internal/handlers"
	"github.com/mohamedahmed66972007/test2025/internal/middleware"
	"github.com/mohamedahmed66972007/test2025/internal/services"
	"github.com/mohamedahmed66972007/test2025/internal/validation"

	_ "github.com/mohamedahmed66972007/test2025/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Student Portal API
// @version         1.0
// @description     Study files, exam schedule and self-service quizzes for a school cohort
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService, err := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("failed to init auth service: %v", err)
	}
	fileService, err := services.NewFileService(db, cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to init file service: %v", err)
	}
	examService := services.NewExamService(db)
	quizService := services.NewQuizService(db)
	scoringService := services.NewScoringService()
	attemptService := services.NewAttemptService(db, scoringService)

	authHandler := handlers.NewAuthHandler(authService)
	fileHandler := handlers.NewFileHandler(fileService, cfg.MaxUploadMB)
	examHandler := handlers.NewExamHandler(examService)
	quizHandler := handlers.NewQuizHandler(quizService, attemptService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	validation.Register()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Static("/uploads", cfg.UploadDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	admin := middleware.AdminAuth(authService)

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		files := api.Group("/files")
		{
			files.GET("", fileHandler.ListFiles)
			files.GET("/:id", fileHandler.GetFile)
			files.POST("", admin, fileHandler.UploadFile)
			files.DELETE("/:id", admin, fileHandler.DeleteFile)
		}

		weeks := api.Group("/exam-weeks")
		{
			weeks.GET("", examHandler.ListExamWeeks)
			weeks.POST("", admin, examHandler.CreateExamWeek)
			weeks.DELETE("/:id", admin, examHandler.DeleteExamWeek)
		}

		exams := api.Group("/exams")
		{
			exams.GET("", examHandler.ListExams)
			exams.POST("", admin, examHandler.CreateExam)
			exams.DELETE("/:id", admin, examHandler.DeleteExam)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.GET("/:id", quizHandler.GetQuiz)
			quizzes.GET("/:id/results", quizHandler.GetQuizResults)
			quizzes.GET("/code/:code", quizHandler.GetQuizByCode)
			quizzes.POST("", admin, quizHandler.CreateQuiz)
			quizzes.DELETE("/:id", admin, quizHandler.DeleteQuiz)
		}

		attempts := api.Group("/quiz-attempts")
		{
			attempts.GET("/:quizId", attemptHandler.ListAttempts)
			attempts.POST("", attemptHandler.SubmitAttempt)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
