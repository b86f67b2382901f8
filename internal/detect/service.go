package detect

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/medscan/amount-detector/internal/ocr"
)

// IDGenerator generates unique IDs for detections
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates IDs using UnixNano timestamp
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service runs the detection pipeline over text or scanned documents and
// records every invocation.
type Service struct {
	db          DB
	engine      ocr.Engine
	storage     Storage
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with default ID generator and time source
func NewService(db DB, engine ocr.Engine, storage Storage) *Service {
	return &Service{
		db:          db,
		engine:      engine,
		storage:     storage,
		idGenerator: &defaultIDGenerator{},
		timeSource:  &defaultTimeSource{},
	}
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, engine ocr.Engine, storage Storage, idGen IDGenerator, timeSrc TimeSource) *Service {
	return &Service{
		db:          db,
		engine:      engine,
		storage:     storage,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

// sanitizeFilename cleans up a filename by removing special characters and truncating length
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	// Keep only alphanumeric, spaces, hyphens, and underscores
	reg := regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	base = reg.ReplaceAllString(base, "")

	reg = regexp.MustCompile(`\s+`)
	base = reg.ReplaceAllString(base, " ")

	base = strings.TrimSpace(base)

	// Phone cameras generate very long names
	maxLen := 50
	if len(base) > maxLen {
		base = base[:maxLen]
	}

	if base == "" {
		base = "document"
	}

	return base + ext
}

// DetectText runs the pipeline over raw document text and records the
// invocation.
func (s *Service) DetectText(text string) (*Detection, error) {
	detection := &Detection{
		ID:        s.idGenerator.Generate(),
		Source:    "text",
		Text:      text,
		Result:    Detect(text),
		CreatedAt: s.timeSource.Now(),
	}

	if err := s.db.SaveDetection(detection); err != nil {
		return nil, fmt.Errorf("saving detection: %w", err)
	}

	return detection, nil
}

// DetectImage stores an uploaded document, runs OCR on it, then runs the
// pipeline over the recognized text. An OCR failure is a bad-input
// error, distinct from the pipeline's no_amounts_found status.
func (s *Service) DetectImage(filename string, data []byte, contentType string) (*Detection, error) {
	id := s.idGenerator.Generate()
	now := s.timeSource.Now()

	cleanFilename := sanitizeFilename(filename)

	savedPath, err := s.storage.Save(fmt.Sprintf("%s_%s", id, cleanFilename), data)
	if err != nil {
		return nil, fmt.Errorf("saving file: %w", err)
	}

	doc, err := s.engine.Recognize(data, contentType)
	if err != nil {
		slog.Error("Failed to recognize document",
			"filename", filename,
			"content_type", contentType,
			"file_size", len(data),
			"error", err,
		)
		// Clean up the saved file since recognition failed
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("recognizing document: %w", err)
	}

	text := doc.Text()
	detection := &Detection{
		ID:            id,
		Source:        "image",
		Text:          text,
		Filename:      savedPath,
		ContentType:   contentType,
		OCRConfidence: doc.Confidence,
		Result:        Detect(text),
		CreatedAt:     now,
	}

	if err := s.db.SaveDetection(detection); err != nil {
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("saving detection: %w", err)
	}

	return detection, nil
}

// RecognizeLines runs OCR on an uploaded document and returns the
// recognized lines with the average confidence, without recording a
// detection. Used by callers that want the text for other purposes.
func (s *Service) RecognizeLines(data []byte, contentType string) ([]string, float64, error) {
	doc, err := s.engine.Recognize(data, contentType)
	if err != nil {
		return nil, 0, fmt.Errorf("recognizing document: %w", err)
	}
	return doc.LineTexts(), doc.Confidence, nil
}

// GetDetection retrieves a detection by ID
func (s *Service) GetDetection(id string) (*Detection, error) {
	detection, err := s.db.GetDetection(id)
	if err != nil {
		return nil, fmt.Errorf("getting detection: %w", err)
	}
	return detection, nil
}

// ListDetections returns all recorded detections
func (s *Service) ListDetections() ([]*Detection, error) {
	detections, err := s.db.ListDetections()
	if err != nil {
		return nil, fmt.Errorf("listing detections: %w", err)
	}
	return detections, nil
}

// DeleteDetection removes a detection and its stored file, if any
func (s *Service) DeleteDetection(id string) error {
	detection, err := s.db.GetDetection(id)
	if err != nil {
		return fmt.Errorf("getting detection for deletion: %w", err)
	}

	if detection.Filename != "" {
		if err := s.storage.Delete(detection.Filename); err != nil {
			// Log error but continue with database deletion
			slog.Warn("Failed to delete file", "filename", detection.Filename, "error", err)
		}
	}

	if err := s.db.DeleteDetection(id); err != nil {
		return fmt.Errorf("deleting detection from database: %w", err)
	}
	return nil
}

// GetDetectionFile retrieves the stored document file for a detection
func (s *Service) GetDetectionFile(id string) ([]byte, string, error) {
	detection, err := s.db.GetDetection(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting detection: %w", err)
	}
	if detection.Filename == "" {
		return nil, "", fmt.Errorf("detection %s has no stored file", id)
	}

	data, err := s.storage.Get(detection.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("getting detection file: %w", err)
	}

	return data, detection.ContentType, nil
}
