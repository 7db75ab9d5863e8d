package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/glbatch/buko-service/internal/domain"
)

const submissionColumns = `id, operator_id, diagnostic_code, be_type, bec1, bec2,
	encoded_line, duplicate_rows, appended, created_at`

type scanner interface {
	Scan(dest ...any) error
}

type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO submissions (
			id, operator_id, diagnostic_code, be_type, bec1, bec2,
			encoded_line, duplicate_rows, appended, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.OperatorID, s.DiagnosticCode, s.BEType, s.BEC1, s.BEC2,
		s.EncodedLine, pq.Array(s.DuplicateRows), s.Appended, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id,
	)
	s, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return s, nil
}

func (r *SubmissionRepository) List(ctx context.Context, limit int) ([]domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions ORDER BY created_at DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("List: scan: %w", err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows: %w", err)
	}
	return out, nil
}

func scanSubmission(s scanner) (*domain.Submission, error) {
	var sub domain.Submission
	var duplicateRows pq.Int64Array

	err := s.Scan(
		&sub.ID, &sub.OperatorID, &sub.DiagnosticCode, &sub.BEType, &sub.BEC1, &sub.BEC2,
		&sub.EncodedLine, &duplicateRows, &sub.Appended, &sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.DuplicateRows = []int64(duplicateRows)
	return &sub, nil
}
