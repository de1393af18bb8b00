package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BHa01559102-bit/hexecutioners/internal/config"
	"github.com/BHa01559102-bit/hexecutioners/internal/models"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := ConnectDatabase(config.Config{
		DBDriver: config.DriverSQLite,
		DB_URL:   filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return New(db)
}

func mustCreateUser(t *testing.T, repo *Repository, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, Email: name + "@example.com", Password: "hash"}
	if err := repo.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func TestCreateUserDuplicate(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	mustCreateUser(t, repo, "alice")

	tests := []struct {
		name string
		user models.User
	}{
		{"same username", models.User{Username: "alice", Email: "other@example.com", Password: "x"}},
		{"same email", models.User{Username: "other", Email: "alice@example.com", Password: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user
			if err := repo.CreateUser(ctx, &u); !errors.Is(err, ErrUserExists) {
				t.Errorf("expected ErrUserExists, got %v", err)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	u := mustCreateUser(t, repo, "bob")

	got, err := repo.GetUserByUsername(ctx, "bob")
	if err != nil || got.ID != u.ID {
		t.Fatalf("by username: %v %+v", err, got)
	}
	if got, err = repo.GetUserByEmail(ctx, "bob@example.com"); err != nil || got.ID != u.ID {
		t.Fatalf("by email: %v %+v", err, got)
	}
	if got, err = repo.GetUserByID(ctx, u.ID); err != nil || got.Username != "bob" {
		t.Fatalf("by id: %v %+v", err, got)
	}
	if _, err := repo.GetUserByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePasswordAndList(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	mustCreateUser(t, repo, "carol")
	mustCreateUser(t, repo, "dave")

	if err := repo.UpdatePassword(ctx, "carol", "newhash"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.UpdatePassword(ctx, "nobody", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 || users[0].Username != "carol" || users[0].Password != "newhash" {
		t.Errorf("unexpected users: %+v", users)
	}
}

func saveTicket(t *testing.T, repo *Repository, ticket string, eligible bool) {
	t.Helper()
	a := &models.Assessment{Ticket: ticket, Eligible: eligible, DropoutPercentage: 20, CompletedAt: time.Now()}
	if err := repo.SaveAssessment(context.Background(), a); err != nil {
		t.Fatalf("save assessment: %v", err)
	}
}

func TestCreateUserWithAssessment(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	saveTicket(t, repo, "ok-ticket", true)
	saveTicket(t, repo, "denied-ticket", false)

	tests := []struct {
		name     string
		username string
		ticket   string
		wantErr  error
	}{
		{"unknown ticket", "u1", "missing", ErrAssessmentRequired},
		{"ineligible ticket", "u2", "denied-ticket", ErrAssessmentRequired},
		{"eligible ticket", "u3", "ok-ticket", nil},
		{"ticket already claimed", "u4", "ok-ticket", ErrAssessmentRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &models.User{Username: tt.username, Email: tt.username + "@example.com", Password: "h"}
			err := repo.CreateUserWithAssessment(ctx, u, tt.ticket)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			_, lookupErr := repo.GetUserByUsername(ctx, tt.username)
			if tt.wantErr != nil && !errors.Is(lookupErr, ErrNotFound) {
				t.Errorf("user should have been rolled back, lookup err %v", lookupErr)
			}
			if tt.wantErr == nil && lookupErr != nil {
				t.Errorf("user should exist: %v", lookupErr)
			}
		})
	}

	u, _ := repo.GetUserByUsername(ctx, "u3")
	a, err := repo.GetAssessmentByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("claimed assessment: %v", err)
	}
	if a.Ticket != "ok-ticket" {
		t.Errorf("wrong assessment claimed: %s", a.Ticket)
	}
}

func TestSaveAssessmentUpserts(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first := &models.Assessment{Ticket: "t1", Gender: "male", DropoutPercentage: 80}
	if err := repo.SaveAssessment(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := &models.Assessment{Ticket: "t1", Gender: "female", DropoutPercentage: 10, Eligible: true}
	if err := repo.SaveAssessment(ctx, second); err != nil {
		t.Fatalf("resave: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected same row, got %d and %d", first.ID, second.ID)
	}

	got, err := repo.GetAssessmentByTicket(ctx, "t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Gender != "female" || !got.Eligible || got.DropoutPercentage != 10 {
		t.Errorf("row not updated: %+v", got)
	}

	u := mustCreateUser(t, repo, "erin")
	mine := &models.Assessment{UserID: &u.ID, Ticket: "t2", TrustInProgram: "weak"}
	if err := repo.SaveAssessment(ctx, mine); err != nil {
		t.Fatalf("save by user: %v", err)
	}
	again := &models.Assessment{UserID: &u.ID, Ticket: "t3", TrustInProgram: "strong"}
	if err := repo.SaveAssessment(ctx, again); err != nil {
		t.Fatalf("resave by user: %v", err)
	}
	if again.ID != mine.ID || again.Ticket != "t2" {
		t.Errorf("expected update of the user's row, got id %d ticket %s", again.ID, again.Ticket)
	}
	if _, err := repo.GetAssessmentByTicket(ctx, "t3"); !errors.Is(err, ErrNotFound) {
		t.Errorf("no new row expected, got %v", err)
	}
}

func TestBestScoresAndLeaderboard(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	alice := mustCreateUser(t, repo, "alice")
	bob := mustCreateUser(t, repo, "bob")
	carol := mustCreateUser(t, repo, "carol")
	mustCreateUser(t, repo, "idle")

	scores := []models.GameScore{
		{UserID: alice.ID, GameName: models.GameNumberGuess, Score: 10},
		{UserID: alice.ID, GameName: models.GameNumberGuess, Score: 30},
		{UserID: alice.ID, GameName: models.GameMemory, Score: 5},
		{UserID: bob.ID, GameName: models.GameTrivia, Score: 35},
		{UserID: carol.ID, GameName: models.GameNumberGuess, Score: 20},
	}
	for i := range scores {
		if err := repo.SaveScore(ctx, &scores[i]); err != nil {
			t.Fatalf("save score: %v", err)
		}
	}

	best, err := repo.BestScores(ctx, alice.ID)
	if err != nil {
		t.Fatalf("best scores: %v", err)
	}
	if best[models.GameNumberGuess] != 30 || best[models.GameMemory] != 5 || len(best) != 2 {
		t.Errorf("unexpected best scores: %v", best)
	}

	t.Run("overall", func(t *testing.T) {
		board, err := repo.Leaderboard(ctx, "", 10)
		if err != nil {
			t.Fatalf("leaderboard: %v", err)
		}
		want := []struct {
			name  string
			rank  int
			score int
		}{{"alice", 1, 35}, {"bob", 1, 35}, {"carol", 3, 20}}
		if len(board) != len(want) {
			t.Fatalf("expected %d rows, got %+v", len(want), board)
		}
		for i, w := range want {
			e := board[i]
			if e.Username != w.name || e.Rank != w.rank || e.Score != w.score {
				t.Errorf("row %d: expected %+v, got %+v", i, w, e)
			}
		}
		if board[0].GamesPlayed != 2 {
			t.Errorf("alice played 2 games, got %d", board[0].GamesPlayed)
		}
	})

	t.Run("single game", func(t *testing.T) {
		board, err := repo.Leaderboard(ctx, models.GameNumberGuess, 10)
		if err != nil {
			t.Fatalf("leaderboard: %v", err)
		}
		if len(board) != 2 || board[0].Username != "alice" || board[0].Score != 30 || board[1].Rank != 2 {
			t.Errorf("unexpected board: %+v", board)
		}
	})

	t.Run("limit", func(t *testing.T) {
		board, err := repo.Leaderboard(ctx, "", 1)
		if err != nil {
			t.Fatalf("leaderboard: %v", err)
		}
		if len(board) != 1 {
			t.Errorf("expected 1 row, got %d", len(board))
		}
	})
}

func TestReplaceDocument(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	owner := mustCreateUser(t, repo, "owner")
	other := mustCreateUser(t, repo, "other")

	first := &models.Document{UserID: owner.ID, DocumentType: "id_card", FilePath: "1/id_card_a.png"}
	prev, err := repo.ReplaceDocument(ctx, first)
	if err != nil || prev != nil {
		t.Fatalf("first upload: prev=%v err=%v", prev, err)
	}

	second := &models.Document{UserID: owner.ID, DocumentType: "id_card", FilePath: "1/id_card_b.png"}
	prev, err = repo.ReplaceDocument(ctx, second)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if prev == nil || prev.FilePath != "1/id_card_a.png" {
		t.Errorf("expected superseded row, got %+v", prev)
	}

	if _, err := repo.ReplaceDocument(ctx, &models.Document{UserID: owner.ID, DocumentType: "marksheet", FilePath: "1/m.pdf"}); err != nil {
		t.Fatalf("second type: %v", err)
	}

	docs, err := repo.ListDocuments(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected one document per type, got %d", len(docs))
	}

	if _, err := repo.GetDocument(ctx, other.ID, second.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("other users must not see the document, got %v", err)
	}
	got, err := repo.GetDocument(ctx, owner.ID, second.ID)
	if err != nil || got.FilePath != "1/id_card_b.png" {
		t.Errorf("owner lookup: %v %+v", err, got)
	}
}

func TestDatabaseLogsGoThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	repo := setupTestRepo(t)
	ctx := context.Background()

	if _, err := repo.GetAssessmentByTicket(ctx, "no-such-ticket"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if strings.Contains(buf.String(), "record not found") {
		t.Errorf("not-found lookups should not be logged:\n%s", buf.String())
	}

	if err := repo.DB().WithContext(ctx).Exec("SELECT * FROM no_such_table").Error; err == nil {
		t.Fatal("expected query error")
	}
	out := buf.String()
	if !strings.Contains(out, "no_such_table") {
		t.Errorf("expected failed query in slog output, got:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("log output should not contain colour codes")
	}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !json.Valid([]byte(line)) {
			t.Errorf("expected JSON log line, got %q", line)
		}
	}
}
