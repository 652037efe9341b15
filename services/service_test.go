package services

import (
	"path/filepath"
	"testing"

	"quizapi/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.QuizResult{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func sampleQuizRequest(name, category string) *CreateQuizRequest {
	return &CreateQuizRequest{
		Name:        name,
		Description: "A quiz about " + name,
		Image:       "https://example.com/" + name + ".png",
		Category:    category,
		Difficulty:  "Easy",
	}
}

func intPtr(v int) *int {
	return &v
}

func mustCreateQuiz(t *testing.T, s *QuizService, name, category string) *models.Quiz {
	t.Helper()

	quiz, err := s.CreateQuiz(sampleQuizRequest(name, category))
	if err != nil {
		t.Fatalf("CreateQuiz(%q) failed: %v", name, err)
	}
	return quiz
}
