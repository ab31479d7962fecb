package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grievance-portal/gateway/internal/core/domain"
)

const (
	collectionAudit   = "portal_audit"
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type auditDocument struct {
	ID         string    `bson:"_id"`
	Action     string    `bson:"action"`
	Resource   string    `bson:"resource"`
	ResourceID string    `bson:"resource_id,omitempty"`
	SessionID  string    `bson:"session_id,omitempty"`
	Role       string    `bson:"role,omitempty"`
	Outcome    string    `bson:"outcome"`
	Error      string    `bson:"error,omitempty"`
	At         time.Time `bson:"at"`
}

func toDocument(e *domain.AuditEntry) auditDocument {
	return auditDocument{
		ID:         e.ID,
		Action:     e.Action,
		Resource:   e.Resource,
		ResourceID: e.ResourceID,
		SessionID:  e.SessionID,
		Role:       string(e.Role),
		Outcome:    string(e.Outcome),
		Error:      e.Error,
		At:         e.At.UTC(),
	}
}

func (d auditDocument) toDomain() domain.AuditEntry {
	return domain.AuditEntry{
		ID:         d.ID,
		Action:     d.Action,
		Resource:   d.Resource,
		ResourceID: d.ResourceID,
		SessionID:  d.SessionID,
		Role:       domain.Role(d.Role),
		Outcome:    domain.AuditOutcome(d.Outcome),
		Error:      d.Error,
		At:         d.At,
	}
}

// AuditRepository stores the gateway's record of forwarded mutations.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

func (r *AuditRepository) Insert(ctx context.Context, e *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toDocument(e)); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListByResource returns the newest entries for one resource first.
func (r *AuditRepository) ListByResource(ctx context.Context, resource, resourceID string, limit int) ([]domain.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	filter := bson.M{"resource": resource, "resource_id": resourceID}
	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []auditDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode audit entries: %w", err)
	}
	out := make([]domain.AuditEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// EnsureIndexes creates the lookup and retention indexes.
func (r *AuditRepository) EnsureIndexes(ctx context.Context, retention time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "resource", Value: 1}, {Key: "resource_id", Value: 1}, {Key: "at", Value: -1}}},
		{Keys: bson.D{{Key: "session_id", Value: 1}}},
	}
	if retention > 0 {
		indexes = append(indexes, mongo.IndexModel{
			Keys:    bson.D{{Key: "at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(retention / time.Second)),
		})
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
