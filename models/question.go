package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings persisted as a JSON text column.
// A stored value that fails to decode is surfaced as a scan error, so corrupt
// rows fail the request instead of leaking raw text to clients.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("corrupt choices value: %w", err)
	}
	return nil
}

type Question struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	QuizID       uint       `json:"quiz_id" gorm:"not null;index"`
	QuestionText string     `json:"question_text" gorm:"not null"`
	Choices      StringList `json:"choices" gorm:"type:text;not null"`
	// Index into Choices. Bounds are a caller contract, not checked here.
	CorrectAnswerIndex int    `json:"correct_answer_index" gorm:"not null"`
	Explanation        string `json:"explanation" gorm:"not null"`
	Category           string `json:"category" gorm:"not null"`
	Difficulty         string `json:"difficulty" gorm:"not null"`
	Image              string `json:"image" gorm:"not null"`
}

func (Question) TableName() string {
	return "questions"
}
