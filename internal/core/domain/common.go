package domain

import "time"

// AuditFields holds creation/modification timestamps embedded by persisted entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
