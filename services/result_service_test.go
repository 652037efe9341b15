package services

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"quizapi/models"

	"gorm.io/datatypes"
)

func resultFixtures(t *testing.T) (*ResultService, *QuizService, *UserService) {
	t.Helper()
	db := newTestDB(t)
	users := NewUserService(db)
	return NewResultService(db, users), NewQuizService(db), users
}

func mustJSON(t *testing.T, v interface{}) datatypes.JSON {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return datatypes.JSON(data)
}

func TestSaveResultCreatesUserOnFirstAttempt(t *testing.T) {
	service, quizzes, _ := resultFixtures(t)

	quiz := mustCreateQuiz(t, quizzes, "Go Basics", "Programming")

	score := 85.5
	resultID, err := service.SaveResult("new@example.com", &SaveResultRequest{
		QuizID:  quiz.ID,
		Score:   &score,
		Answers: []int{0, 2, 1},
	})
	if err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if resultID == 0 {
		t.Fatalf("expected assigned result id")
	}

	// The user was created as a side effect and owns the result.
	results, err := service.GetResultsForUser("new@example.com")
	if err != nil {
		t.Fatalf("GetResultsForUser failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got := results[0]
	if got.ResultID != resultID || got.Score != score || got.QuizID != quiz.ID {
		t.Fatalf("unexpected result row: %+v", got)
	}
	if got.QuizName != "Go Basics" || got.Category != "Programming" || got.Difficulty != "Easy" {
		t.Fatalf("result not enriched with quiz fields: %+v", got)
	}

	var answers []int
	if err := json.Unmarshal(got.Answers, &answers); err != nil {
		t.Fatalf("answers did not round trip: %v", err)
	}
	if !reflect.DeepEqual(answers, []int{0, 2, 1}) {
		t.Fatalf("answers = %v, want [0 2 1]", answers)
	}
}

func TestSaveResultAllowsMissingQuiz(t *testing.T) {
	service, _, _ := resultFixtures(t)

	score := 50.0
	resultID, err := service.SaveResult("orphan@example.com", &SaveResultRequest{
		QuizID:  4242,
		Score:   &score,
		Answers: map[string]int{"q1": 1},
	})
	if err != nil {
		t.Fatalf("SaveResult should not check quiz existence: %v", err)
	}
	if resultID == 0 {
		t.Fatalf("expected assigned result id")
	}
}

func TestGetResultsForUserOrderedNewestFirst(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	service := NewResultService(db, users)
	quizzes := NewQuizService(db)

	quiz := mustCreateQuiz(t, quizzes, "Go Basics", "Programming")
	user, _, err := users.GetOrCreateUser("alice@example.com")
	if err != nil {
		t.Fatalf("GetOrCreateUser failed: %v", err)
	}

	rows := []models.QuizResult{
		{UserID: user.ID, QuizID: quiz.ID, Score: 40, Answers: mustJSON(t, []int{0}), CompletedAt: "2026-08-26 10:00:00"},
		{UserID: user.ID, QuizID: quiz.ID, Score: 90, Answers: mustJSON(t, []int{1}), CompletedAt: "2026-08-28 09:30:00"},
		{UserID: user.ID, QuizID: quiz.ID, Score: 70, Answers: mustJSON(t, []int{2}), CompletedAt: "2026-08-27 18:45:00"},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("insert fixture result: %v", err)
		}
	}

	results, err := service.GetResultsForUser("alice@example.com")
	if err != nil {
		t.Fatalf("GetResultsForUser failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	wantOrder := []float64{90, 70, 40}
	for i, want := range wantOrder {
		if results[i].Score != want {
			t.Fatalf("results not ordered newest first: %+v", results)
		}
	}
}

func TestGetResultsForUnknownUser(t *testing.T) {
	service, _, _ := resultFixtures(t)

	if _, err := service.GetResultsForUser("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, _, err := service.GetUserStats("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound from stats, got %v", err)
	}
}

func TestGetUserStatsZeroResults(t *testing.T) {
	service, _, users := resultFixtures(t)

	if _, _, err := users.GetOrCreateUser("fresh@example.com"); err != nil {
		t.Fatalf("GetOrCreateUser failed: %v", err)
	}

	overall, categories, err := service.GetUserStats("fresh@example.com")
	if err != nil {
		t.Fatalf("GetUserStats failed: %v", err)
	}
	want := OverallStats{}
	if *overall != want {
		t.Fatalf("expected all-zero stats, got %+v", overall)
	}
	if len(categories) != 0 {
		t.Fatalf("expected no category stats, got %v", categories)
	}
}

func TestGetUserStatsAggregates(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	service := NewResultService(db, users)
	quizzes := NewQuizService(db)

	programming := mustCreateQuiz(t, quizzes, "Go Basics", "Programming")
	geography := mustCreateQuiz(t, quizzes, "World Capitals", "Geography")

	user, _, err := users.GetOrCreateUser("alice@example.com")
	if err != nil {
		t.Fatalf("GetOrCreateUser failed: %v", err)
	}

	fixtures := []models.QuizResult{
		{UserID: user.ID, QuizID: programming.ID, Score: 60, Answers: mustJSON(t, []int{0}), CompletedAt: "2026-08-25 10:00:00"},
		{UserID: user.ID, QuizID: programming.ID, Score: 80, Answers: mustJSON(t, []int{1}), CompletedAt: "2026-08-26 10:00:00"},
		{UserID: user.ID, QuizID: geography.ID, Score: 100, Answers: mustJSON(t, []int{2}), CompletedAt: "2026-08-27 10:00:00"},
	}
	for i := range fixtures {
		if err := db.Create(&fixtures[i]).Error; err != nil {
			t.Fatalf("insert fixture result: %v", err)
		}
	}

	overall, categories, err := service.GetUserStats("alice@example.com")
	if err != nil {
		t.Fatalf("GetUserStats failed: %v", err)
	}
	if overall.TotalQuizzes != 3 || overall.UniqueQuizzes != 2 {
		t.Fatalf("counts wrong: %+v", overall)
	}
	if overall.HighestScore != 100 || overall.LowestScore != 60 {
		t.Fatalf("min/max wrong: %+v", overall)
	}
	if math.Abs(overall.AverageScore-80) > 1e-9 {
		t.Fatalf("average = %f, want 80", overall.AverageScore)
	}

	if len(categories) != 2 {
		t.Fatalf("expected 2 category rows, got %d", len(categories))
	}
	byCategory := make(map[string]CategoryStats, len(categories))
	for _, stat := range categories {
		byCategory[stat.Category] = stat
	}
	if stat := byCategory["Programming"]; stat.QuizzesTaken != 2 || math.Abs(stat.AverageScore-70) > 1e-9 {
		t.Fatalf("Programming stats wrong: %+v", stat)
	}
	if stat := byCategory["Geography"]; stat.QuizzesTaken != 1 || math.Abs(stat.AverageScore-100) > 1e-9 {
		t.Fatalf("Geography stats wrong: %+v", stat)
	}
}
