package services

import (
	"encoding/json"
	"errors"
	"time"

	"quizapi/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ResultService struct {
	db    *gorm.DB
	users *UserService
}

func NewResultService(db *gorm.DB, users *UserService) *ResultService {
	return &ResultService{db: db, users: users}
}

type SaveResultRequest struct {
	QuizID  uint        `json:"quiz_id" binding:"required"`
	Score   *float64    `json:"score" binding:"required"`
	Answers interface{} `json:"answers" binding:"required"`
}

// UserResult is a quiz result joined with the quiz it was taken on.
type UserResult struct {
	ResultID    uint           `json:"result_id"`
	Score       float64        `json:"score"`
	Answers     datatypes.JSON `json:"answers"`
	CompletedAt string         `json:"completed_at"`
	QuizID      uint           `json:"quiz_id"`
	QuizName    string         `json:"quiz_name"`
	Category    string         `json:"category"`
	Difficulty  string         `json:"difficulty"`
}

type OverallStats struct {
	TotalQuizzes  int64   `json:"total_quizzes"`
	AverageScore  float64 `json:"average_score"`
	HighestScore  float64 `json:"highest_score"`
	LowestScore   float64 `json:"lowest_score"`
	UniqueQuizzes int64   `json:"unique_quizzes"`
}

type CategoryStats struct {
	Category     string  `json:"category"`
	QuizzesTaken int64   `json:"quizzes_taken"`
	AverageScore float64 `json:"average_score"`
}

// SaveResult records one quiz attempt, creating the user on first contact.
// The quiz id is deliberately not checked against the quiz table: attempts on
// a since-deleted quiz are still accepted.
func (s *ResultService) SaveResult(email string, req *SaveResultRequest) (uint, error) {
	user, _, err := s.users.GetOrCreateUser(email)
	if err != nil {
		return 0, err
	}

	answers, err := json.Marshal(req.Answers)
	if err != nil {
		return 0, err
	}

	result := models.QuizResult{
		UserID:      user.ID,
		QuizID:      req.QuizID,
		Score:       *req.Score,
		Answers:     datatypes.JSON(answers),
		CompletedAt: time.Now().Format(timestampLayout),
	}

	if err := s.db.Create(&result).Error; err != nil {
		return 0, err
	}

	return result.ID, nil
}

// GetResultsForUser returns the user's attempts newest first, each enriched
// with the quiz's name, category and difficulty.
func (s *ResultService) GetResultsForUser(email string) ([]UserResult, error) {
	user, err := s.findUser(email)
	if err != nil {
		return nil, err
	}

	results := make([]UserResult, 0)
	err = s.db.Raw(`
		SELECT
			qr.id AS result_id,
			qr.score,
			qr.answers,
			qr.completed_at,
			q.id AS quiz_id,
			q.name AS quiz_name,
			q.category,
			q.difficulty
		FROM quiz_results qr
		JOIN quiz q ON qr.quiz_id = q.id
		WHERE qr.user_id = ?
		ORDER BY qr.completed_at DESC`, user.ID).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// GetUserStats aggregates the user's results overall and per quiz category.
// A user with no results gets all-zero overall stats, not an error.
func (s *ResultService) GetUserStats(email string) (*OverallStats, []CategoryStats, error) {
	user, err := s.findUser(email)
	if err != nil {
		return nil, nil, err
	}

	var overall OverallStats
	err = s.db.Raw(`
		SELECT
			COUNT(*) AS total_quizzes,
			COALESCE(AVG(score), 0) AS average_score,
			COALESCE(MAX(score), 0) AS highest_score,
			COALESCE(MIN(score), 0) AS lowest_score,
			COUNT(DISTINCT quiz_id) AS unique_quizzes
		FROM quiz_results
		WHERE user_id = ?`, user.ID).
		Scan(&overall).Error
	if err != nil {
		return nil, nil, err
	}

	categories := make([]CategoryStats, 0)
	err = s.db.Raw(`
		SELECT
			q.category,
			COUNT(*) AS quizzes_taken,
			AVG(qr.score) AS average_score
		FROM quiz_results qr
		JOIN quiz q ON qr.quiz_id = q.id
		WHERE qr.user_id = ?
		GROUP BY q.category`, user.ID).
		Scan(&categories).Error
	if err != nil {
		return nil, nil, err
	}

	return &overall, categories, nil
}

func (s *ResultService) findUser(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
