package repositories

import (
	"testing"

	"github.com/vijay-kumar-79/ZCoder/internal/models"
	"github.com/vijay-kumar-79/ZCoder/internal/testhelpers"
)

func seedAuthor(t *testing.T, repo *UserRepository) *models.User {
	t.Helper()
	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("seed author: %v", err)
	}
	return user
}

func TestSolutionLifecycle(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	users := &UserRepository{DB: db}
	repo := &SolutionRepository{DB: db}
	author := seedAuthor(t, users)

	first := &models.Solution{ProblemSlug: "two-sum", Code: "def f(): pass", Language: "python", AuthorID: author.ID}
	second := &models.Solution{ProblemSlug: "two-sum", Code: "fn f() {}", Language: "rust", AuthorID: author.ID}
	for _, s := range []*models.Solution{first, second} {
		if err := repo.Create(s); err != nil {
			t.Fatalf("create solution: %v", err)
		}
	}

	got, err := repo.GetByID(first.ID)
	if err != nil {
		t.Fatalf("get solution: %v", err)
	}
	if got.Author.Username != "alice" {
		t.Fatalf("expected author preloaded, got %#v", got.Author)
	}

	list, err := repo.ListByProblem("two-sum")
	if err != nil {
		t.Fatalf("list solutions: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected two solutions, got %d", len(list))
	}

	if err := repo.DeleteByID(first.ID); err != nil {
		t.Fatalf("delete solution: %v", err)
	}
	if err := repo.DeleteByID(first.ID); err != ErrSolutionNotFound {
		t.Fatalf("expected ErrSolutionNotFound on double delete, got %v", err)
	}
}

func TestSolutionVote(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	users := &UserRepository{DB: db}
	repo := &SolutionRepository{DB: db}
	author := seedAuthor(t, users)

	s := &models.Solution{ProblemSlug: "two-sum", Code: "x", AuthorID: author.ID}
	if err := repo.Create(s); err != nil {
		t.Fatalf("create solution: %v", err)
	}

	votes, err := repo.Vote(s.ID, 1)
	if err != nil || votes != 1 {
		t.Fatalf("expected 1 vote, got %d err=%v", votes, err)
	}
	votes, err = repo.Vote(s.ID, -1)
	if err != nil || votes != 0 {
		t.Fatalf("expected 0 votes, got %d err=%v", votes, err)
	}

	if _, err := repo.Vote(999, 1); err != ErrSolutionNotFound {
		t.Fatalf("expected ErrSolutionNotFound, got %v", err)
	}
}
