package documents

import "time"

// Document is an evidence file registered against the organization,
// optionally associated with one control and/or one task (weak
// references, no cascading delete).
type Document struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	FileKey        string    `json:"file_key"`
	FileSize       int64     `json:"file_size"`
	MimeType       string    `json:"mime_type"`
	Version        int       `json:"version"`
	ControlID      string    `json:"control_id,omitempty"`
	TaskID         string    `json:"task_id,omitempty"`
	OrganizationID string    `json:"organization_id"`
	UploadedByID   string    `json:"uploaded_by_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// List is the list-endpoint payload shape.
type List struct {
	Documents []*Document `json:"documents"`
	Total     int         `json:"total"`
	TotalSize int64       `json:"total_size"`
}

// Filter narrows a document listing. Empty fields are inactive;
// Search matches name and description case-insensitively.
type Filter struct {
	ControlID string
	TaskID    string
	Search    string
}

// UploadSlot is a time-boxed, single-use direct-write target issued
// for the presigned path. A failed transfer must not reuse the slot.
type UploadSlot struct {
	UploadURL string `json:"upload_url"`
	FileKey   string `json:"file_key"`
	ExpiresIn int    `json:"expires_in"`
}

// Patch is a partial document update; nil fields are left unchanged.
type Patch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ControlID   *string `json:"control_id,omitempty"`
	TaskID      *string `json:"task_id,omitempty"`
}
