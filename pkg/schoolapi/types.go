package schoolapi

import (
	"encoding/json"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

// Envelope is the answer of a create/update/delete call: the backend returns
// either the mutated resource or a status object, so the raw body is kept.
type Envelope struct {
	Message string          `json:"message,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps the raw body alongside the message.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	e.Raw = append(json.RawMessage(nil), b...)
	var v struct {
		Message string `json:"message"`
	}
	// A non-object body carries no message, which is fine.
	_ = json.Unmarshal(b, &v)
	e.Message = v.Message
	return nil
}

// ResourceID digs the affected resource id out of the body, looking at the
// top level and under "data". Returns 0 when there is none.
func (e *Envelope) ResourceID() int {
	if id := idOf(e.Raw); id != 0 {
		return id
	}
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(e.Raw, &wrapped); err != nil {
		return 0
	}
	return idOf(wrapped.Data)
}

func idOf(raw json.RawMessage) int {
	var v struct {
		ID            models.Number `json:"id"`
		ClassBundleID models.Number `json:"class_bundle_id"`
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	if v.ClassBundleID != 0 {
		return v.ClassBundleID.Int()
	}
	return v.ID.Int()
}

// decodeResource decodes a single resource that may or may not be wrapped in
// a {"data": ...} object.
func decodeResource(raw json.RawMessage, out any) error {
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Data) > 0 && wrapped.Data[0] == '{' {
		return json.Unmarshal(wrapped.Data, out)
	}
	return json.Unmarshal(raw, out)
}
