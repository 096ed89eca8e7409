// Package models defines the persisted data model.
package models

import "time"

// RequestLog is one translation request record.
type RequestLog struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Endpoint   string    `gorm:"size:64;index" json:"endpoint"`
	SourceLang string    `gorm:"size:8" json:"source_lang"`
	TargetLang string    `gorm:"size:8" json:"target_lang"`
	Status     int       `gorm:"index" json:"status"`
	Chars      int       `json:"chars"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName keeps the table name explicit.
func (RequestLog) TableName() string {
	return "request_logs"
}
