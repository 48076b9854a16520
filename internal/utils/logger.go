package utils

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"best-readers-backend/internal/models"
)

type Logger struct {
	Collection *mongo.Collection
}

func (l *Logger) Log(ctx context.Context, entity, action string, data any) error {
	entry := models.AuditLog{
		Timestamp: time.Now(),
		Entity:    entity,
		Action:    action,
		Data:      data,
	}
	_, err := l.Collection.InsertOne(ctx, entry)
	return err
}
