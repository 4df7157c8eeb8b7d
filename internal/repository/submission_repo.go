package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

// SubmissionRepository stores the bundle submission audit log.
type SubmissionRepository struct {
	db *sqlx.DB
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts s and fills in its id and creation time.
func (r *SubmissionRepository) Create(ctx context.Context, s *models.BundleSubmission) error {
	const q = `
        INSERT INTO bundle_submissions (
            session_id, mode, bundle_id, school_id, class_id, cl_id, name,
            item_count, payload, admin_name, status, error, created_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW()
        )
        RETURNING id, created_at`
	stmt, err := r.db.PreparexContext(ctx, q)
	if err != nil {
		return err
	}
	defer stmt.Close()
	return stmt.QueryRowxContext(ctx,
		s.SessionID,
		s.Mode,
		s.BundleID,
		s.SchoolID,
		s.ClassID,
		s.CLID,
		s.Name,
		s.ItemCount,
		string(s.Payload),
		s.AdminName,
		s.Status,
		s.Error,
	).Scan(&s.ID, &s.CreatedAt)
}

// ListRecent returns the newest submissions first, optionally only those of one bundle.
func (r *SubmissionRepository) ListRecent(ctx context.Context, bundleID *int, limit int) ([]models.BundleSubmission, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const q = `
        SELECT * FROM bundle_submissions
        WHERE ($1::int IS NULL OR bundle_id = $1)
        ORDER BY created_at DESC, id DESC
        LIMIT $2`
	subs := []models.BundleSubmission{}
	if err := r.db.SelectContext(ctx, &subs, q, bundleID, limit); err != nil {
		return nil, err
	}
	return subs, nil
}
