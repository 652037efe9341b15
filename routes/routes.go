package routes

import (
	"net/http"

	"quizapi/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	quizHandler *handlers.QuizHandler,
	questionHandler *handlers.QuestionHandler,
	userHandler *handlers.UserHandler,
) {
	// API routes
	api := router.Group("/api")
	{
		api.GET("/categories", quizHandler.GetCategories)

		// Quiz routes
		quizzes := api.Group("/quizzes")
		{
			quizzes.GET("", quizHandler.GetQuizzes)
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.POST("/with-questions", quizHandler.CreateQuizWithQuestions)
			quizzes.GET("/category-samples", quizHandler.GetCategorySamples)
			quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
			quizzes.GET("/:id/questions", questionHandler.GetQuizQuestions)
		}

		// Question routes
		questions := api.Group("/questions")
		{
			questions.POST("", questionHandler.AddQuestions)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}

		// User and result routes
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.POST("/:email/results", userHandler.SaveResult)
			users.GET("/:email/results", userHandler.GetResults)
			users.GET("/:email/stats", userHandler.GetStats)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
