package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"adsim/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository implements port.SessionRepository using pgxpool for
// PostgreSQL. Config and report are stored as jsonb documents.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns a new repository instance.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Save inserts the session or replaces the stored snapshot.
func (r *SessionRepository) Save(ctx context.Context, s *domain.Session) error {
	row, err := encodeSession(s)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO campaign_sessions (id, owner_id, step, config, report, simulations, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (id) DO UPDATE SET
            owner_id    = EXCLUDED.owner_id,
            step        = EXCLUDED.step,
            config      = EXCLUDED.config,
            report      = EXCLUDED.report,
            simulations = EXCLUDED.simulations,
            updated_at  = EXCLUDED.updated_at`,
		row.id, row.ownerID, row.step, row.config, row.report, row.simulations, row.createdAt, row.updatedAt)
	if err != nil {
		return fmt.Errorf("save session %s: %w", s.ID, err)
	}
	return nil
}

// Get returns the session by id, or nil when it does not exist. Ids that
// are not UUIDs cannot name a row and are reported as missing.
func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	if !validID(id) {
		return nil, nil
	}
	var row sessionRow
	err := r.pool.QueryRow(ctx, `
        SELECT id, owner_id, step, config, report, simulations, created_at, updated_at
        FROM campaign_sessions WHERE id = $1`, id).
		Scan(&row.id, &row.ownerID, &row.step, &row.config, &row.report, &row.simulations, &row.createdAt, &row.updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.decode()
}

// Delete removes the session. Unknown ids are ignored.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM campaign_sessions WHERE id = $1`, id)
	return err
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type sessionRow struct {
	id          string
	ownerID     string
	step        int
	config      []byte
	report      []byte
	simulations int
	createdAt   time.Time
	updatedAt   time.Time
}

func encodeSession(s *domain.Session) (sessionRow, error) {
	cfg, err := json.Marshal(s.Config)
	if err != nil {
		return sessionRow{}, fmt.Errorf("encode config: %w", err)
	}
	var report []byte
	if s.Report != nil {
		if report, err = json.Marshal(s.Report); err != nil {
			return sessionRow{}, fmt.Errorf("encode report: %w", err)
		}
	}
	return sessionRow{
		id:          s.ID,
		ownerID:     s.OwnerID,
		step:        s.Step,
		config:      cfg,
		report:      report,
		simulations: s.Simulations,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}, nil
}

func (row sessionRow) decode() (*domain.Session, error) {
	s := &domain.Session{
		ID:          row.id,
		OwnerID:     row.ownerID,
		Step:        row.step,
		Simulations: row.simulations,
		CreatedAt:   row.createdAt,
		UpdatedAt:   row.updatedAt,
	}
	if err := json.Unmarshal(row.config, &s.Config); err != nil {
		return nil, fmt.Errorf("decode config of session %s: %w", row.id, err)
	}
	if len(row.report) > 0 {
		var report domain.Report
		if err := json.Unmarshal(row.report, &report); err != nil {
			return nil, fmt.Errorf("decode report of session %s: %w", row.id, err)
		}
		s.Report = &report
	}
	return s, nil
}
