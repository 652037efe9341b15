package services

import (
	"errors"
	"fmt"

	"quizapi/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// QuestionInput is one item of a bulk add. No binding tags: items are
// validated one by one so a bad item reports an error instead of failing the
// whole request.
type QuestionInput struct {
	QuizID             uint              `json:"quiz_id"`
	QuestionText       string            `json:"question_text"`
	Choices            models.StringList `json:"choices"`
	CorrectAnswerIndex *int              `json:"correct_answer_index"`
	Explanation        string            `json:"explanation"`
	Category           string            `json:"category"`
	Difficulty         string            `json:"difficulty"`
	Image              string            `json:"image"`
}

type BatchError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// AddQuestions processes each item independently: invalid items or items
// pointing at a missing quiz become error entries, valid items are inserted.
// The batch never aborts early.
func (s *QuestionService) AddQuestions(items []QuestionInput) ([]models.Question, []BatchError, error) {
	added := make([]models.Question, 0, len(items))
	batchErrors := make([]BatchError, 0)

	for index, item := range items {
		if err := validateQuestionInput(&item); err != nil {
			batchErrors = append(batchErrors, BatchError{Index: index, Error: err.Error()})
			continue
		}

		var quiz models.Quiz
		if err := s.db.First(&quiz, item.QuizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				batchErrors = append(batchErrors, BatchError{
					Index: index,
					Error: fmt.Sprintf("Quiz with ID %d not found", item.QuizID),
				})
				continue
			}
			return nil, nil, err
		}

		question := models.Question{
			QuizID:             item.QuizID,
			QuestionText:       item.QuestionText,
			Choices:            item.Choices,
			CorrectAnswerIndex: *item.CorrectAnswerIndex,
			Explanation:        item.Explanation,
			Category:           item.Category,
			Difficulty:         item.Difficulty,
			Image:              item.Image,
		}

		if err := s.db.Create(&question).Error; err != nil {
			batchErrors = append(batchErrors, BatchError{Index: index, Error: err.Error()})
			continue
		}

		added = append(added, question)
	}

	return added, batchErrors, nil
}

func (s *QuestionService) DeleteQuestion(questionID uint) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	return s.db.Delete(&models.Question{}, questionID).Error
}

// GetQuizWithQuestions returns the quiz row and every question that belongs
// to it.
func (s *QuestionService) GetQuizWithQuestions(quizID uint) (*models.Quiz, []models.Question, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrQuizNotFound
		}
		return nil, nil, err
	}

	questions := make([]models.Question, 0)
	if err := s.db.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		return nil, nil, err
	}

	return &quiz, questions, nil
}

func validateQuestionInput(item *QuestionInput) error {
	if item.QuizID == 0 {
		return newValidationError("quiz_id is required")
	}
	if item.QuestionText == "" {
		return newValidationError("question_text is required")
	}
	if len(item.Choices) == 0 {
		return newValidationError("choices must be a non-empty array")
	}
	if item.CorrectAnswerIndex == nil {
		return newValidationError("correct_answer_index is required")
	}
	return nil
}
