package dualrepo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/meowza1/guardian-test/internal/domain/model"
)

type stubCasesRepo struct {
	insertCalls int
	insertErr   error
	listed      []model.Case
	listErr     error
	listCalls   int
}

func (s *stubCasesRepo) Insert(_ context.Context, _ model.Case) error {
	s.insertCalls++
	return s.insertErr
}

func (s *stubCasesRepo) ListByTarget(_ context.Context, _ int64, _ int) ([]model.Case, error) {
	s.listCalls++
	return s.listed, s.listErr
}

func TestDualMongoOkDoesNotCallDB(t *testing.T) {
	t.Parallel()

	mongoRepo := &stubCasesRepo{listed: []model.Case{{TargetID: 42}}}
	dbRepo := &stubCasesRepo{}
	repo := NewCasesRepo(mongoRepo, dbRepo, ModeDual)

	records, err := repo.ListByTarget(context.Background(), 42, 5)
	if err != nil {
		t.Fatalf("list by target: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	if mongoRepo.listCalls != 1 {
		t.Fatalf("expected mongo repo call, got %d", mongoRepo.listCalls)
	}
	if dbRepo.listCalls != 0 {
		t.Fatalf("expected db repo not called, got %d", dbRepo.listCalls)
	}
}

func TestDualMongoUnavailableFallsBackToDB(t *testing.T) {
	t.Parallel()

	mongoRepo := &stubCasesRepo{insertErr: fmt.Errorf("insert case: %w", context.DeadlineExceeded)}
	dbRepo := &stubCasesRepo{}
	repo := NewCasesRepo(mongoRepo, dbRepo, ModeDual)

	if err := repo.Insert(context.Background(), model.Case{TargetID: 42}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if mongoRepo.insertCalls != 1 || dbRepo.insertCalls != 1 {
		t.Fatalf("expected mongo then db, got mongo=%d db=%d", mongoRepo.insertCalls, dbRepo.insertCalls)
	}
}

func TestDualMongoRequestErrorNotFallbackable(t *testing.T) {
	t.Parallel()

	mongoRepo := &stubCasesRepo{insertErr: errors.New("document failed validation")}
	dbRepo := &stubCasesRepo{}
	repo := NewCasesRepo(mongoRepo, dbRepo, ModeDual)

	if err := repo.Insert(context.Background(), model.Case{TargetID: 42}); err == nil {
		t.Fatal("expected error to surface")
	}
	if dbRepo.insertCalls != 0 {
		t.Fatalf("expected no db fallback, got %d calls", dbRepo.insertCalls)
	}
}

func TestModeDBUsesOnlyDB(t *testing.T) {
	t.Parallel()

	mongoRepo := &stubCasesRepo{}
	dbRepo := &stubCasesRepo{}
	repo := NewCasesRepo(mongoRepo, dbRepo, ModeDB)

	if err := repo.Insert(context.Background(), model.Case{TargetID: 42}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if mongoRepo.insertCalls != 0 || dbRepo.insertCalls != 1 {
		t.Fatalf("expected db only, got mongo=%d db=%d", mongoRepo.insertCalls, dbRepo.insertCalls)
	}
}

func TestModeMongoUsesOnlyMongo(t *testing.T) {
	t.Parallel()

	mongoRepo := &stubCasesRepo{}
	dbRepo := &stubCasesRepo{}
	repo := NewCasesRepo(mongoRepo, dbRepo, ModeMongo)

	if err := repo.Insert(context.Background(), model.Case{TargetID: 42}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if mongoRepo.insertCalls != 1 || dbRepo.insertCalls != 0 {
		t.Fatalf("expected mongo only, got mongo=%d db=%d", mongoRepo.insertCalls, dbRepo.insertCalls)
	}
}

func TestUnknownModeNormalizedToDual(t *testing.T) {
	t.Parallel()

	mongoRepo := &stubCasesRepo{}
	repo := NewCasesRepo(mongoRepo, &stubCasesRepo{}, "HTTP")

	if repo.mode != ModeDual {
		t.Fatalf("expected dual mode, got %q", repo.mode)
	}
}

func TestDualMissingMongoUsesDB(t *testing.T) {
	t.Parallel()

	dbRepo := &stubCasesRepo{}
	repo := NewCasesRepo(nil, dbRepo, ModeDual)

	if err := repo.Insert(context.Background(), model.Case{TargetID: 42}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if dbRepo.insertCalls != 1 {
		t.Fatalf("expected db call, got %d", dbRepo.insertCalls)
	}
}
