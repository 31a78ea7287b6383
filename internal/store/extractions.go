package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/model"
)

// ExtractionSummary is the listing view of a stored run.
type ExtractionSummary struct {
	ID         string  `json:"id"`
	Filename   string  `json:"filename"`
	SheetCount int     `json:"sheetCount"`
	LaneCount  int     `json:"laneCount"`
	RateCount  int     `json:"rateCount"`
	Confidence float64 `json:"confidence"`
	CreatedAt  string  `json:"createdAt"`
}

// ExtractionRecord is a stored run with its full payload.
type ExtractionRecord struct {
	ExtractionSummary
	Payload *model.QuotePayload `json:"payload"`
}

// SaveExtraction persists one engine run.
func (s *Store) SaveExtraction(id, filename string, sheetCount int, payload *model.QuotePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO extractions (id, filename, sheet_count, lane_count, rate_count, confidence, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, filename, sheetCount, len(payload.Lanes), len(payload.Rates), payload.Diagnostics.Confidence, string(data))
	if err != nil {
		return fmt.Errorf("failed to save extraction: %w", err)
	}
	return nil
}

// GetExtraction loads one run by id.
func (s *Store) GetExtraction(id string) (*ExtractionRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, filename, sheet_count, lane_count, rate_count, confidence, payload, created_at
		FROM extractions WHERE id = ?
	`, id)

	var rec ExtractionRecord
	var data string
	err := row.Scan(&rec.ID, &rec.Filename, &rec.SheetCount, &rec.LaneCount,
		&rec.RateCount, &rec.Confidence, &data, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load extraction: %w", err)
	}

	var payload model.QuotePayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	rec.Payload = &payload

	return &rec, nil
}

// ListExtractions returns run summaries, newest first.
func (s *Store) ListExtractions() ([]ExtractionSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, filename, sheet_count, lane_count, rate_count, confidence, created_at
		FROM extractions ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	defer rows.Close()

	summaries := make([]ExtractionSummary, 0)
	for rows.Next() {
		var sum ExtractionSummary
		if err := rows.Scan(&sum.ID, &sum.Filename, &sum.SheetCount, &sum.LaneCount,
			&sum.RateCount, &sum.Confidence, &sum.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan extraction: %w", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// CountExtractions returns the number of stored runs.
func (s *Store) CountExtractions() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM extractions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count extractions: %w", err)
	}
	return n, nil
}

// DeleteExtraction removes one run; reports whether it existed.
func (s *Store) DeleteExtraction(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM extractions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete extraction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
