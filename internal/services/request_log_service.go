// Package services contains background services supporting the gateway.
package services

import (
	"sync"
	"time"

	"lingo-gate/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	logBufferSize    = 1024
	logFlushInterval = 30 * time.Second
	logFlushBatch    = 200
)

// RequestLogEntry is the recordable outcome of one request.
type RequestLogEntry struct {
	Endpoint   string
	SourceLang string
	TargetLang string
	Status     int
	Chars      int
	DurationMs int64
}

// RequestLogService buffers request log rows and flushes them to the
// database in batches. Recording never blocks or fails a request: entries
// are dropped with a warning when the buffer is full.
type RequestLogService struct {
	db       *gorm.DB
	entries  chan RequestLogEntry
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewRequestLogService creates a new RequestLogService. A nil db yields a
// nil service, which disables recording.
func NewRequestLogService(db *gorm.DB) *RequestLogService {
	if db == nil {
		return nil
	}
	return &RequestLogService{
		db:       db,
		entries:  make(chan RequestLogEntry, logBufferSize),
		stopChan: make(chan struct{}),
	}
}

// Start launches the periodic flush routine.
func (s *RequestLogService) Start() {
	if s == nil {
		return
	}
	s.wg.Add(1)
	go s.flushLoop()
}

// Stop flushes remaining entries and stops the service.
func (s *RequestLogService) Stop() {
	if s == nil {
		return
	}
	close(s.stopChan)
	s.wg.Wait()
}

// Record enqueues one entry for asynchronous persistence.
func (s *RequestLogService) Record(entry RequestLogEntry) {
	if s == nil {
		return
	}
	select {
	case s.entries <- entry:
	default:
		logrus.Warn("Request log buffer full, dropping entry")
	}
}

func (s *RequestLogService) flushLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(logFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.flush()
		case <-s.stopChan:
			s.flush()
			return
		}
	}
}

// flush drains the buffer and writes pending rows in batches.
func (s *RequestLogService) flush() {
	var rows []models.RequestLog
	for {
		select {
		case entry := <-s.entries:
			rows = append(rows, models.RequestLog{
				ID:         uuid.NewString(),
				Endpoint:   entry.Endpoint,
				SourceLang: entry.SourceLang,
				TargetLang: entry.TargetLang,
				Status:     entry.Status,
				Chars:      entry.Chars,
				DurationMs: entry.DurationMs,
				CreatedAt:  time.Now(),
			})
		default:
			if len(rows) == 0 {
				return
			}
			if err := s.db.CreateInBatches(rows, logFlushBatch).Error; err != nil {
				logrus.Errorf("Failed to flush %d request log rows: %v", len(rows), err)
			}
			return
		}
	}
}
