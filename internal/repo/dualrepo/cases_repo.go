package dualrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/meowza1/guardian-test/internal/domain/model"
	"github.com/meowza1/guardian-test/internal/repo/mongodb"
)

// Ledger backend modes. Dual keeps Mongo as the primary (the system's
// historical store) and falls back to Postgres when Mongo is unreachable.
const (
	ModeDual  = "dual"
	ModeMongo = "mongo"
	ModeDB    = "db"
)

type CasesRepo interface {
	Insert(context.Context, model.Case) error
	ListByTarget(context.Context, int64, int) ([]model.Case, error)
}

type DualCasesRepo struct {
	mongoRepo CasesRepo
	dbRepo    CasesRepo
	mode      string
}

func NewCasesRepo(mongoRepo, dbRepo CasesRepo, mode string) *DualCasesRepo {
	normalizedMode := strings.ToLower(strings.TrimSpace(mode))
	switch normalizedMode {
	case ModeDB, ModeMongo, ModeDual:
	default:
		normalizedMode = ModeDual
	}
	return &DualCasesRepo{
		mongoRepo: mongoRepo,
		dbRepo:    dbRepo,
		mode:      normalizedMode,
	}
}

func (r *DualCasesRepo) Insert(ctx context.Context, c model.Case) error {
	_, err := callWithFallback(r, func(repo CasesRepo) (struct{}, error) {
		return struct{}{}, repo.Insert(ctx, c)
	})
	return err
}

func (r *DualCasesRepo) ListByTarget(ctx context.Context, targetID int64, limit int) ([]model.Case, error) {
	return callWithFallback(r, func(repo CasesRepo) ([]model.Case, error) {
		return repo.ListByTarget(ctx, targetID, limit)
	})
}

func callWithFallback[T any](r *DualCasesRepo, call func(CasesRepo) (T, error)) (T, error) {
	var zero T
	if r == nil {
		return zero, errors.New("dual cases repo is nil")
	}

	switch r.mode {
	case ModeDB:
		if r.dbRepo == nil {
			return zero, errors.New("db cases repo is not configured")
		}
		return call(r.dbRepo)
	case ModeMongo:
		if r.mongoRepo == nil {
			return zero, errors.New("mongo cases repo is not configured")
		}
		return call(r.mongoRepo)
	default:
		if r.mongoRepo == nil {
			if r.dbRepo == nil {
				return zero, errors.New("cases repos are not configured")
			}
			return call(r.dbRepo)
		}

		value, err := call(r.mongoRepo)
		if err == nil {
			return value, nil
		}
		if r.dbRepo == nil {
			return zero, err
		}
		if !mongodb.IsUnavailable(err) {
			return zero, err
		}
		dbValue, dbErr := call(r.dbRepo)
		if dbErr != nil {
			return zero, fmt.Errorf("mongo err: %v; db fallback err: %w", err, dbErr)
		}
		return dbValue, nil
	}
}
