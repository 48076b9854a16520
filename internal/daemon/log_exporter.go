package daemon

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"best-readers-backend/internal/models"
	"best-readers-backend/internal/utils"
)

// LogExporter periodically drains unexported audit logs to the export sink
// and marks them exported.
type LogExporter struct {
	Coll     *mongo.Collection
	Interval time.Duration
}

// Start runs the export loop until ctx is cancelled.
func (l *LogExporter) Start(ctx context.Context) {
	interval := l.Interval
	if interval == 0 {
		interval = 30 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.exportPending(ctx)
			}
		}
	}()
}

func (l *LogExporter) exportPending(ctx context.Context) {
	cursor, err := l.Coll.Find(ctx, bson.M{"exported": false})
	if err != nil {
		return
	}

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil || len(logs) == 0 {
		return
	}

	if err := utils.ExportData(logs); err != nil {
		return
	}

	ids := make([]primitive.ObjectID, 0, len(logs))
	for _, entry := range logs {
		ids = append(ids, entry.ID)
	}

	l.Coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"exported": true}},
	)
}
