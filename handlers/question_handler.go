package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"quizapi/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// AddQuestions accepts an array of question objects and inserts the valid
// ones. Item failures are reported per index; the response is 201 as long as
// at least one item made it in.
func (h *QuestionHandler) AddQuestions(c *gin.Context) {
	var items []services.QuestionInput
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, batchErrors, err := h.questionService.AddQuestions(items)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response := gin.H{
		"success":     true,
		"results":     added,
		"total_added": len(added),
	}
	if len(batchErrors) > 0 {
		response["errors"] = batchErrors
		response["total_errors"] = len(batchErrors)
	}

	status := http.StatusCreated
	if len(added) == 0 {
		status = http.StatusBadRequest
		response["success"] = false
	}

	c.JSON(status, response)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	if err := h.questionService.DeleteQuestion(uint(questionID)); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Question with ID %d was deleted successfully", questionID),
	})
}

func (h *QuestionHandler) GetQuizQuestions(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return
	}

	quiz, questions, err := h.questionService.GetQuizWithQuestions(uint(quizID))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quiz":      quiz,
		"questions": questions,
		"count":     len(questions),
	})
}
