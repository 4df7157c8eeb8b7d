package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/bundle"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/cache"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/pkg/schoolapi"
)

// SubmissionLog records bundle submissions that reached the backend.
type SubmissionLog interface {
	Create(ctx context.Context, s *models.BundleSubmission) error
	ListRecent(ctx context.Context, bundleID *int, limit int) ([]models.BundleSubmission, error)
}

// Session is one admin's in-progress bundle edit.
type Session struct {
	ID       string                `json:"id"`
	Mode     models.SubmissionMode `json:"mode"`
	BundleID int                   `json:"bundleId,omitempty"`
	Owner    string                `json:"-"`
	// OriginalSchoolID is the school the bundle had when the session opened.
	OriginalSchoolID int           `json:"originalSchoolId,omitempty"`
	Header           bundle.Header `json:"header"`
	Tree             bundle.Tree   `json:"tree"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// storedSession keeps the owner in the persisted form while the API form hides it.
type storedSession struct {
	Session
	Owner string `json:"owner"`
}

// HeaderPatch changes the bundle-level selections. Nil fields are kept.
type HeaderPatch struct {
	Name     *string `json:"name"`
	SchoolID *int    `json:"school_id"`
	ClassID  *int    `json:"class_id"`
	CLID     *int    `json:"cl_id"`
}

// SectionOptions are the dependent dropdown contents of one section.
type SectionOptions struct {
	SectionID     string               `json:"sectionId"`
	Generation    uint64               `json:"generation"`
	SubCategories []models.SubCategory `json:"subCategories"`
	Products      []models.Product     `json:"products"`
}

// SubmitResult is the outcome of a successful submit.
type SubmitResult struct {
	Mode      models.SubmissionMode `json:"mode"`
	BundleID  int                   `json:"bundleId,omitempty"`
	ItemCount int                   `json:"itemCount"`
	Message   string                `json:"message"`
}

// BundleService drives bundle editing sessions and the bundle list.
type BundleService struct {
	backend  Backend
	refs     *ReferenceService
	sessions *cache.SessionStore
	audit    SubmissionLog
	newID    bundle.IDSource
	now      func() time.Time
}

// NewBundleService constructs a BundleService.
func NewBundleService(backend Backend, refs *ReferenceService, sessions *cache.SessionStore, audit SubmissionLog) *BundleService {
	return &BundleService{
		backend:  backend,
		refs:     refs,
		sessions: sessions,
		audit:    audit,
		newID:    bundle.NewID,
		now:      time.Now,
	}
}

// OpenCreate starts a session for a new bundle with one empty section.
func (s *BundleService) OpenCreate(ctx context.Context, owner string, schoolID int) (*Session, error) {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Mode:      models.SubmissionCreate,
		Owner:     owner,
		Header:    bundle.Header{SchoolID: schoolID},
		Tree:      bundle.NewTree(s.newID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	log.Info().Str("session_id", sess.ID).Str("owner", owner).Msg("Bundle create session opened")
	return sess, nil
}

// OpenEdit starts a session pre-populated from an existing bundle.
func (s *BundleService) OpenEdit(ctx context.Context, owner string, bundleID int) (*Session, error) {
	rows, err := s.backend.ListBundleRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bundles: %w", err)
	}
	b, ok := bundle.Find(bundle.Aggregate(rows), bundleID)
	if !ok {
		return nil, ErrBundleNotFound
	}
	catalog, err := s.refs.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	now := s.now()
	sess := &Session{
		ID:               uuid.NewString(),
		Mode:             models.SubmissionUpdate,
		BundleID:         bundleID,
		Owner:            owner,
		OriginalSchoolID: b.SchoolID,
		Header: bundle.Header{
			Name:     b.Name,
			SchoolID: b.SchoolID,
			ClassID:  b.ClassID,
			CLID:     b.CLID,
		},
		Tree:      bundle.BuildTree(bundle.Associations(b), catalog, s.newID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	log.Info().
		Str("session_id", sess.ID).
		Int("bundle_id", bundleID).
		Int("sections", len(sess.Tree.Sections)).
		Msg("Bundle edit session opened")
	return sess, nil
}

// Get returns a session owned by owner.
func (s *BundleService) Get(ctx context.Context, owner, sessionID string) (*Session, error) {
	var stored storedSession
	if err := s.sessions.Load(ctx, sessionID, &stored); err != nil {
		if errors.Is(err, cache.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if stored.Owner != owner {
		return nil, ErrSessionNotFound
	}
	sess := stored.Session
	sess.Owner = stored.Owner
	return &sess, nil
}

// Cancel discards a session without submitting.
func (s *BundleService) Cancel(ctx context.Context, owner, sessionID string) error {
	if _, err := s.Get(ctx, owner, sessionID); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, sessionID)
}

// UpdateHeader applies a header patch.
func (s *BundleService) UpdateHeader(ctx context.Context, owner, sessionID string, patch HeaderPatch) (*Session, error) {
	return s.mutate(ctx, owner, sessionID, func(sess *Session) error {
		if patch.Name != nil {
			sess.Header.Name = *patch.Name
		}
		if patch.SchoolID != nil {
			sess.Header.SchoolID = *patch.SchoolID
		}
		if patch.ClassID != nil {
			sess.Header.ClassID = *patch.ClassID
		}
		if patch.CLID != nil {
			sess.Header.CLID = *patch.CLID
		}
		return nil
	})
}

// AddSection appends an empty section.
func (s *BundleService) AddSection(ctx context.Context, owner, sessionID string) (*Session, error) {
	return s.mutate(ctx, owner, sessionID, func(sess *Session) error {
		sess.Tree = sess.Tree.AddSection(s.newID)
		return nil
	})
}

// RemoveSection drops a section.
func (s *BundleService) RemoveSection(ctx context.Context, owner, sessionID, sectionID string) (*Session, error) {
	return s.mutate(ctx, owner, sessionID, func(sess *Session) error {
		sess.Tree = sess.Tree.RemoveSection(sectionID)
		return nil
	})
}

// SetSectionCategory selects a section's category.
func (s *BundleService) SetSectionCategory(ctx context.Context, owner, sessionID, sectionID string, categoryID int) (*Session, error) {
	return s.mutate(ctx, owner, sessionID, func(sess *Session) (err error) {
		sess.Tree, err = sess.Tree.SetSectionCategory(sectionID, categoryID)
		return err
	})
}

// SetSectionSubcategory selects a section's subcategory.
func (s *BundleService) SetSectionSubcategory(ctx context.Context, owner, sessionID, sectionID string, subCategoryID int) (*Session, error) {
	return s.mutate(ctx, owner, sessionID, func(sess *Session) (err error) {
		sess.Tree, err = sess.Tree.SetSectionSubcategory(sectionID, subCategoryID)
		return err
	})
}

// AddProduct adds a product to a section after checking it against the
// section's current option list.
func (s *BundleService) AddProduct(ctx context.Context, owner, sessionID, sectionID string, productID int) (*Session, error) {
	sess, err := s.Get(ctx, owner, sessionID)
	if err != nil {
		return nil, err
	}
	sec, ok := sess.Tree.Section(sectionID)
	if !ok {
		return nil, bundle.ErrSectionNotFound
	}
	if sec.CategoryID == 0 || sec.SubCategoryID == 0 {
		return nil, bundle.ErrSectionIncomplete
	}

	options, err := s.refs.ProductsFor(ctx, sec.CategoryID, sec.SubCategoryID)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	return s.mutate(ctx, owner, sessionID, func(sess *Session) (err error) {
		if !sameSelection(sess.Tree, sec) {
			return ErrStaleSelection
		}
		sess.Tree, err = sess.Tree.AddProduct(sectionID, productID, options)
		return err
	})
}

// RemoveProduct drops a product from a section.
func (s *BundleService) RemoveProduct(ctx context.Context, owner, sessionID, sectionID string, productID int) (*Session, error) {
	return s.mutate(ctx, owner, sessionID, func(sess *Session) error {
		sess.Tree = sess.Tree.RemoveProduct(sectionID, productID)
		return nil
	})
}

// AdjustQuantity changes a product's quantity by delta.
func (s *BundleService) AdjustQuantity(ctx context.Context, owner, sessionID, sectionID string, productID, delta int) (*Session, error) {
	return s.mutate(ctx, owner, sessionID, func(sess *Session) (err error) {
		sess.Tree, err = sess.Tree.AdjustQuantity(sectionID, productID, delta)
		return err
	})
}

// SetMandatory sets a product's mandatory flag.
func (s *BundleService) SetMandatory(ctx context.Context, owner, sessionID, sectionID string, productID int, mandatory bool) (*Session, error) {
	return s.mutate(ctx, owner, sessionID, func(sess *Session) (err error) {
		sess.Tree, err = sess.Tree.SetMandatory(sectionID, productID, mandatory)
		return err
	})
}

// SectionOptions loads the subcategories of a section's category and the
// products of its pair. A selection change during the load discards the
// result with ErrStaleSelection.
func (s *BundleService) SectionOptions(ctx context.Context, owner, sessionID, sectionID string) (*SectionOptions, error) {
	sess, err := s.Get(ctx, owner, sessionID)
	if err != nil {
		return nil, err
	}
	sec, ok := sess.Tree.Section(sectionID)
	if !ok {
		return nil, bundle.ErrSectionNotFound
	}

	opts := &SectionOptions{
		SectionID:     sec.ID,
		Generation:    sec.Generation,
		SubCategories: []models.SubCategory{},
		Products:      []models.Product{},
	}
	if sec.CategoryID != 0 {
		if opts.SubCategories, err = s.refs.SubCategories(ctx, sec.CategoryID); err != nil {
			return nil, fmt.Errorf("load subcategories: %w", err)
		}
	}
	if sec.CategoryID != 0 && sec.SubCategoryID != 0 {
		if opts.Products, err = s.refs.ProductsFor(ctx, sec.CategoryID, sec.SubCategoryID); err != nil {
			return nil, fmt.Errorf("load products: %w", err)
		}
	}

	latest, err := s.Get(ctx, owner, sessionID)
	if err != nil {
		return nil, err
	}
	if !sameSelection(latest.Tree, sec) {
		return nil, ErrStaleSelection
	}
	return opts, nil
}

// Submit validates and sends a session's bundle to the backend. Validation
// failures make no network call and keep the session. The session is
// discarded once the backend accepts the bundle.
func (s *BundleService) Submit(ctx context.Context, owner, adminName, sessionID string) (*SubmitResult, error) {
	sess, err := s.Get(ctx, owner, sessionID)
	if err != nil {
		return nil, err
	}
	rows, err := bundle.PrepareSubmission(sess.Header, sess.Tree)
	if err != nil {
		return nil, err
	}

	var (
		env     *schoolapi.Envelope
		payload any
	)
	switch sess.Mode {
	case models.SubmissionUpdate:
		req := updateRequest(sess, rows)
		payload = req
		env, err = s.backend.UpdateBundle(ctx, req)
	default:
		req := &models.CreateBundleRequest{
			ClassID:  sess.Header.ClassID,
			CLID:     sess.Header.CLID,
			SchoolID: sess.Header.SchoolID,
			Name:     sess.Header.Name,
			Products: rows,
		}
		payload = req
		env, err = s.backend.CreateBundle(ctx, req)
	}

	s.record(ctx, sess, adminName, payload, len(rows), env, err)
	if err != nil {
		log.Error().Err(err).Str("session_id", sess.ID).Str("mode", string(sess.Mode)).Msg("Bundle submit failed")
		return nil, err
	}

	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		log.Warn().Err(err).Str("session_id", sess.ID).Msg("Failed to discard submitted session")
	}

	result := &SubmitResult{
		Mode:      sess.Mode,
		BundleID:  sess.BundleID,
		ItemCount: len(rows),
	}
	if env != nil {
		result.Message = env.Message
		if id := env.ResourceID(); id != 0 {
			result.BundleID = id
		}
	}
	log.Info().
		Str("session_id", sess.ID).
		Str("mode", string(sess.Mode)).
		Int("bundle_id", result.BundleID).
		Int("items", result.ItemCount).
		Msg("Bundle submitted")
	return result, nil
}

func updateRequest(sess *Session, rows []models.BundleProductRow) *models.UpdateBundleRequest {
	name := sess.Header.Name
	req := &models.UpdateBundleRequest{
		BundleID: sess.BundleID,
		Name:     &name,
		ClassID:  sess.Header.ClassID,
		CLID:     sess.Header.CLID,
		Products: rows,
	}
	if sess.Header.SchoolID != sess.OriginalSchoolID {
		school := sess.Header.SchoolID
		req.NewSchoolID = &school
	}
	return req
}

// record writes the audit row. A failing audit log never fails the submit.
func (s *BundleService) record(ctx context.Context, sess *Session, adminName string, payload any, items int, env *schoolapi.Envelope, callErr error) {
	if s.audit == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode submission payload")
		raw = []byte("{}")
	}

	entry := &models.BundleSubmission{
		SessionID: sess.ID,
		Mode:      sess.Mode,
		SchoolID:  sess.Header.SchoolID,
		ClassID:   sess.Header.ClassID,
		CLID:      sess.Header.CLID,
		Name:      sess.Header.Name,
		ItemCount: items,
		Payload:   raw,
		AdminName: adminName,
		Status:    models.SubmissionSuccess,
	}
	bundleID := sess.BundleID
	if env != nil && env.ResourceID() != 0 {
		bundleID = env.ResourceID()
	}
	if bundleID != 0 {
		entry.BundleID = &bundleID
	}
	if callErr != nil {
		msg := schoolapi.ErrorMessage(callErr)
		entry.Status = models.SubmissionFailed
		entry.Error = &msg
	}

	if err := s.audit.Create(ctx, entry); err != nil {
		log.Error().Err(err).Str("session_id", sess.ID).Msg("Failed to write submission audit record")
	}
}

// List returns the aggregated bundles, optionally only those of one school.
func (s *BundleService) List(ctx context.Context, schoolID int) ([]models.AggregatedBundle, error) {
	rows, err := s.backend.ListBundleRows(ctx)
	if err != nil {
		return []models.AggregatedBundle{}, err
	}
	if schoolID > 0 {
		filtered := rows[:0:0]
		for _, r := range rows {
			if r.SchoolID == schoolID {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}
	return bundle.Aggregate(rows), nil
}

// Delete removes a bundle on the backend.
func (s *BundleService) Delete(ctx context.Context, bundleID int) (string, error) {
	env, err := s.backend.DeleteBundle(ctx, bundleID)
	if err != nil {
		return "", err
	}
	log.Info().Int("bundle_id", bundleID).Msg("Bundle deleted")
	return env.Message, nil
}

// Submissions lists recent audit records, optionally for one bundle.
func (s *BundleService) Submissions(ctx context.Context, bundleID *int, limit int) ([]models.BundleSubmission, error) {
	if s.audit == nil {
		return []models.BundleSubmission{}, nil
	}
	return s.audit.ListRecent(ctx, bundleID, limit)
}

// mutate loads a session, applies fn and saves the result. When fn fails
// nothing is saved.
func (s *BundleService) mutate(ctx context.Context, owner, sessionID string, fn func(*Session) error) (*Session, error) {
	sess, err := s.Get(ctx, owner, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = s.now()
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *BundleService) save(ctx context.Context, sess *Session) error {
	if err := s.sessions.Save(ctx, sess.ID, storedSession{Session: *sess, Owner: sess.Owner}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// sameSelection reports whether the tree still holds sec with the
// generation it had when a dependent fetch began.
func sameSelection(t bundle.Tree, sec bundle.Section) bool {
	cur, ok := t.Section(sec.ID)
	return ok && cur.Generation == sec.Generation
}
