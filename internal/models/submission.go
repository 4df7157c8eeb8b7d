package models

import (
	"encoding/json"
	"time"
)

// SubmissionMode tells whether a bundle submission created or updated a bundle.
type SubmissionMode string

const (
	SubmissionCreate SubmissionMode = "create"
	SubmissionUpdate SubmissionMode = "update"
)

// SubmissionStatus is the outcome of the backend call.
type SubmissionStatus string

const (
	SubmissionSuccess SubmissionStatus = "success"
	SubmissionFailed  SubmissionStatus = "failed"
)

// BundleSubmission is one audit row per bundle submit that reached the backend.
type BundleSubmission struct {
	ID        int              `db:"id" json:"id"`
	SessionID string           `db:"session_id" json:"sessionId"`
	Mode      SubmissionMode   `db:"mode" json:"mode"`
	BundleID  *int             `db:"bundle_id" json:"bundleId,omitempty"`
	SchoolID  int              `db:"school_id" json:"schoolId"`
	ClassID   int              `db:"class_id" json:"classId"`
	CLID      int              `db:"cl_id" json:"clId"`
	Name      string           `db:"name" json:"name"`
	ItemCount int              `db:"item_count" json:"itemCount"`
	Payload   json.RawMessage  `db:"payload" json:"payload"`
	AdminName string           `db:"admin_name" json:"adminName"`
	Status    SubmissionStatus `db:"status" json:"status"`
	Error     *string          `db:"error" json:"error,omitempty"`
	CreatedAt time.Time        `db:"created_at" json:"createdAt"`
}
