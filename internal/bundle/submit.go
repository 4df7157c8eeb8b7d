package bundle

import (
	"errors"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

// Submission validation errors. Both are raised before any network call.
var (
	ErrMissingField = errors.New("class and language are required")
	ErrEmptyBundle  = errors.New("add at least one product to the bundle")
)

// Header holds the bundle-level selections of an editing session.
type Header struct {
	Name     string `json:"name"`
	SchoolID int    `json:"school_id"`
	ClassID  int    `json:"class_id"`
	CLID     int    `json:"cl_id"`
}

// PrepareSubmission validates a session's header and tree and returns the
// flattened product rows to send.
func PrepareSubmission(h Header, t Tree) ([]models.BundleProductRow, error) {
	if h.ClassID == 0 || h.CLID == 0 {
		return nil, ErrMissingField
	}
	rows := t.Flatten()
	if len(rows) == 0 {
		return nil, ErrEmptyBundle
	}
	return rows, nil
}
