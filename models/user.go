package models

type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt string `json:"created_at" gorm:"not null"` // YYYY-MM-DD HH:MM:SS
}

func (User) TableName() string {
	return "users"
}
