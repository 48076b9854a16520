package utils

import (
	"fmt"

	"best-readers-backend/internal/models"
)

func ExportData(logs []models.AuditLog) error {
	for _, entry := range logs {
		//change with actual calls
		fmt.Println(entry.Timestamp, entry.Entity, entry.Action, entry.Data)
	}
	return nil
}
