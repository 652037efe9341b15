package models

type Quiz struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	Image       string `json:"image" gorm:"not null"`
	Category    string `json:"category" gorm:"not null"`
	Difficulty  string `json:"difficulty" gorm:"not null"`
	CreatedAt   string `json:"created_at" gorm:"not null"` // YYYY-MM-DD
}

func (Quiz) TableName() string {
	return "quiz"
}
