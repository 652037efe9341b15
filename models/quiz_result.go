package models

import "gorm.io/datatypes"

type QuizResult struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`
	// QuizID is not checked against the quiz table on insert; results for a
	// since-deleted quiz are allowed to exist.
	QuizID      uint           `json:"quiz_id" gorm:"not null"`
	Score       float64        `json:"score" gorm:"not null"`
	Answers     datatypes.JSON `json:"answers" gorm:"not null"`
	CompletedAt string         `json:"completed_at" gorm:"not null"` // YYYY-MM-DD HH:MM:SS
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
