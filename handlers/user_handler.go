package handlers

import (
	"net/http"

	"quizapi/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService   *services.UserService
	resultService *services.ResultService
}

func NewUserHandler(userService *services.UserService, resultService *services.ResultService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		resultService: resultService,
	}
}

type createUserRequest struct {
	Email string `json:"email" binding:"required"`
}

// CreateUser registers a user by email. Registering an existing email is not
// an error: the existing id comes back with a 200 instead of a 201.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, created, err := h.userService.GetOrCreateUser(req.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "User already exists",
			"user_id": user.ID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user_id": user.ID,
	})
}

func (h *UserHandler) SaveResult(c *gin.Context) {
	var req services.SaveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resultID, err := h.resultService.SaveResult(c.Param("email"), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Quiz result saved successfully",
		"result_id": resultID,
	})
}

func (h *UserHandler) GetResults(c *gin.Context) {
	email := c.Param("email")

	results, err := h.resultService.GetResultsForUser(email)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":         email,
		"results":       results,
		"total_results": len(results),
	})
}

func (h *UserHandler) GetStats(c *gin.Context) {
	email := c.Param("email")

	overall, categories, err := h.resultService.GetUserStats(email)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":          email,
		"overall_stats":  overall,
		"category_stats": categories,
	})
}
