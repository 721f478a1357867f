package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elenavoss/advisor/internal/db"
	"github.com/elenavoss/advisor/internal/domain"
)

// SQLiteBlueprintRepo implements BlueprintRepo using a SQLite database.
// Summary lines and idea lists are stored as JSON columns; the blueprint is
// a finished document, not something queried by field.
type SQLiteBlueprintRepo struct {
	db db.DBTX
}

// NewSQLiteBlueprintRepo creates a new SQLiteBlueprintRepo.
func NewSQLiteBlueprintRepo(db db.DBTX) *SQLiteBlueprintRepo {
	return &SQLiteBlueprintRepo{db: db}
}

func (r *SQLiteBlueprintRepo) Create(ctx context.Context, bp *domain.Blueprint) error {
	summary, err := json.Marshal(bp.Summary)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	ideas, err := json.Marshal(bp.Recommendation.Ideas)
	if err != nil {
		return fmt.Errorf("encoding ideas: %w", err)
	}

	var problemProgram, problemAudience any
	if p := bp.Recommendation.Problem; p != nil {
		problemProgram = p.RecommendedProgram
		problemAudience = p.TargetAudience
	}
	var lengthAdvice any
	if bp.Recommendation.Length != nil {
		lengthAdvice = *bp.Recommendation.Length
	}

	query := `INSERT INTO blueprints (id, goal, created_at, summary, length_advice, ideas,
		problem_program, problem_audience, generated, next_steps, prompt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		bp.ID,
		string(bp.Goal),
		bp.CreatedAt.Format(time.RFC3339),
		string(summary),
		lengthAdvice,
		string(ideas),
		problemProgram,
		problemAudience,
		bp.Generated,
		bp.NextSteps,
		bp.Prompt,
	)
	if err != nil {
		return fmt.Errorf("inserting blueprint: %w", err)
	}
	return nil
}

func (r *SQLiteBlueprintRepo) GetByID(ctx context.Context, id string) (*domain.Blueprint, error) {
	query := `SELECT id, goal, created_at, summary, length_advice, ideas,
		problem_program, problem_audience, generated, next_steps, prompt
		FROM blueprints WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanBlueprint(row)
}

func (r *SQLiteBlueprintRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Blueprint, error) {
	query := `SELECT id, goal, created_at, summary, length_advice, ideas,
		problem_program, problem_audience, generated, next_steps, prompt
		FROM blueprints ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing blueprints: %w", err)
	}
	defer rows.Close()

	var bps []*domain.Blueprint
	for rows.Next() {
		bp, err := r.scanBlueprint(rows)
		if err != nil {
			return nil, err
		}
		bps = append(bps, bp)
	}
	return bps, rows.Err()
}

func (r *SQLiteBlueprintRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blueprints WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting blueprint: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting blueprint: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteBlueprintRepo) scanBlueprint(row rowScanner) (*domain.Blueprint, error) {
	var (
		bp              domain.Blueprint
		goal            string
		createdAt       string
		summaryJSON     string
		ideasJSON       string
		lengthAdvice    sql.NullString
		problemProgram  sql.NullString
		problemAudience sql.NullString
	)
	err := row.Scan(&bp.ID, &goal, &createdAt, &summaryJSON, &lengthAdvice, &ideasJSON,
		&problemProgram, &problemAudience, &bp.Generated, &bp.NextSteps, &bp.Prompt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning blueprint: %w", err)
	}

	bp.Goal = domain.Goal(goal)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		bp.CreatedAt = t
	}
	if err := json.Unmarshal([]byte(summaryJSON), &bp.Summary); err != nil {
		return nil, fmt.Errorf("decoding summary: %w", err)
	}
	if err := json.Unmarshal([]byte(ideasJSON), &bp.Recommendation.Ideas); err != nil {
		return nil, fmt.Errorf("decoding ideas: %w", err)
	}
	if lengthAdvice.Valid {
		s := lengthAdvice.String
		bp.Recommendation.Length = &s
	}
	if problemProgram.Valid || problemAudience.Valid {
		bp.Recommendation.Problem = &domain.ProblemFocus{
			RecommendedProgram: problemProgram.String,
			TargetAudience:     problemAudience.String,
		}
	}
	return &bp, nil
}
