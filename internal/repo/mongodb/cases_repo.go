package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meowza1/guardian-test/internal/domain/enums"
	"github.com/meowza1/guardian-test/internal/domain/model"
)

// caseDocument is the historical document shape of guardian.cases.
type caseDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      int64              `bson:"user"`
	Action    string             `bson:"action"`
	Reason    string             `bson:"reason"`
	Moderator int64              `bson:"moderator"`
	Time      time.Time          `bson:"time"`
}

type CasesRepo struct {
	collection *mongo.Collection
}

func NewCasesRepo(client *mongo.Client, database string) *CasesRepo {
	if client == nil {
		return &CasesRepo{}
	}
	if strings.TrimSpace(database) == "" {
		database = DefaultDatabase
	}
	return &CasesRepo{collection: client.Database(database).Collection(CasesCollection)}
}

func (r *CasesRepo) Insert(ctx context.Context, c model.Case) error {
	if r.collection == nil {
		return nil
	}

	_, err := r.collection.InsertOne(ctx, caseDocument{
		User:      c.TargetID,
		Action:    string(c.Action),
		Reason:    c.Reason,
		Moderator: c.ModeratorID,
		Time:      c.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

func (r *CasesRepo) ListByTarget(ctx context.Context, targetID int64, limit int) ([]model.Case, error) {
	if r.collection == nil {
		return []model.Case{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "time", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"user": targetID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer cursor.Close(ctx)

	result := make([]model.Case, 0, limit)
	for cursor.Next(ctx) {
		var doc caseDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode case document: %w", err)
		}
		result = append(result, model.Case{
			ID:          doc.ID.Hex(),
			TargetID:    doc.User,
			Action:      enums.CaseAction(doc.Action),
			Reason:      doc.Reason,
			ModeratorID: doc.Moderator,
			CreatedAt:   doc.Time,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate case documents: %w", err)
	}

	return result, nil
}
