package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"quizapi/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

func (h *QuizHandler) GetCategories(c *gin.Context) {
	categories, err := h.quizService.ListCategories()
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *QuizHandler) GetQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes(c.Query("category"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return
	}

	questionsDeleted, err := h.quizService.DeleteQuiz(uint(quizID))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           fmt.Sprintf("Quiz with ID %d was deleted successfully", quizID),
		"questions_deleted": questionsDeleted,
	})
}

func (h *QuizHandler) CreateQuizWithQuestions(c *gin.Context) {
	var req services.CreateQuizWithQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Questions == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid questions array"})
		return
	}

	quiz, questions, err := h.quizService.CreateQuizWithQuestions(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"quiz":            quiz,
		"questions":       questions,
		"total_questions": len(questions),
	})
}

func (h *QuizHandler) GetCategorySamples(c *gin.Context) {
	limit := 3
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	samples, err := h.quizService.GetCategorySamples(limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"samples":              samples,
		"total_categories":     len(samples),
		"quizzes_per_category": limit,
	})
}
