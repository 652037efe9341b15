package services

import (
	"errors"
	"time"

	"quizapi/models"

	"gorm.io/gorm"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Difficulty  string `json:"difficulty" binding:"required"`
}

type CreateQuestionRequest struct {
	QuestionText       string            `json:"question_text" binding:"required"`
	Choices            models.StringList `json:"choices" binding:"required,min=1"`
	CorrectAnswerIndex *int              `json:"correct_answer_index" binding:"required"`
	Explanation        string            `json:"explanation"`
	Category           string            `json:"category"`
	Difficulty         string            `json:"difficulty"`
	Image              string            `json:"image"`
}

type CreateQuizWithQuestionsRequest struct {
	Quiz      CreateQuizRequest       `json:"quiz" binding:"required"`
	Questions []CreateQuestionRequest `json:"questions"`
}

// ListQuizzes returns every quiz, or only those matching category exactly when
// it is non-empty.
func (s *QuizService) ListQuizzes(category string) ([]models.Quiz, error) {
	quizzes := make([]models.Quiz, 0)
	query := s.db
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// ListCategories returns the distinct category labels across all quizzes.
func (s *QuizService) ListCategories() ([]string, error) {
	categories := make([]string, 0)
	err := s.db.Model(&models.Quiz{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	quiz := models.Quiz{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		CreatedAt:   time.Now().Format(dateLayout),
	}

	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}

	return &quiz, nil
}

// DeleteQuiz removes a quiz and all of its questions in one transaction and
// reports how many questions went with it. Partial deletion is never visible:
// either both steps commit or neither does.
func (s *QuizService) DeleteQuiz(quizID uint) (int64, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// The existence check runs inside the transaction so a quiz removed by a
	// concurrent request turns into a not-found, not a silent no-op success.
	var quiz models.Quiz
	if err := tx.First(&quiz, quizID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrQuizNotFound
		}
		return 0, err
	}

	result := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{})
	if result.Error != nil {
		tx.Rollback()
		return 0, result.Error
	}
	questionsDeleted := result.RowsAffected

	if err := tx.Delete(&models.Quiz{}, quizID).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	return questionsDeleted, nil
}

// CreateQuizWithQuestions validates everything up front, then inserts the quiz
// and its questions in request order inside one transaction. Any failure rolls
// the whole batch back.
func (s *QuizService) CreateQuizWithQuestions(req *CreateQuizWithQuestionsRequest) (*models.Quiz, []models.Question, error) {
	for i := range req.Questions {
		if err := validateQuestion(&req.Questions[i], i); err != nil {
			return nil, nil, err
		}
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	quiz := models.Quiz{
		Name:        req.Quiz.Name,
		Description: req.Quiz.Description,
		Image:       req.Quiz.Image,
		Category:    req.Quiz.Category,
		Difficulty:  req.Quiz.Difficulty,
		CreatedAt:   time.Now().Format(dateLayout),
	}

	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for _, qReq := range req.Questions {
		question := models.Question{
			QuizID:             quiz.ID,
			QuestionText:       qReq.QuestionText,
			Choices:            qReq.Choices,
			CorrectAnswerIndex: *qReq.CorrectAnswerIndex,
			Explanation:        qReq.Explanation,
			Category:           qReq.Category,
			Difficulty:         qReq.Difficulty,
			Image:              qReq.Image,
		}

		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, nil, err
		}

		questions = append(questions, question)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, err
	}

	return &quiz, questions, nil
}

// GetCategorySamples picks up to limit quizzes at random from every category.
// The map is empty when there are no quizzes at all. The category list and the
// per-category queries share one transaction so the samples are a consistent
// snapshot: every listed category has at least one quiz in it.
func (s *QuizService) GetCategorySamples(limit int) (map[string][]models.Quiz, error) {
	if limit <= 0 {
		limit = 3
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	categories := make([]string, 0)
	err := tx.Model(&models.Quiz{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	samples := make(map[string][]models.Quiz, len(categories))
	for _, category := range categories {
		var quizzes []models.Quiz
		err := tx.Where("category = ?", category).
			Order("RANDOM()").
			Limit(limit).
			Find(&quizzes).Error
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		samples[category] = quizzes
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return samples, nil
}

func validateQuestion(req *CreateQuestionRequest, index int) error {
	if req.QuestionText == "" {
		return newValidationError("question %d: question_text is required", index)
	}
	if len(req.Choices) == 0 {
		return newValidationError("question %d: choices must be a non-empty array", index)
	}
	if req.CorrectAnswerIndex == nil {
		return newValidationError("question %d: correct_answer_index is required", index)
	}
	return nil
}
