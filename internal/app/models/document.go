package models

import "time"

// DocumentRequest mirrors the platform's document workflow ticket.
type DocumentRequest struct {
	ID           int64          `json:"id"`
	UserID       int64          `json:"user_id"`
	User         *User          `json:"user,omitempty"`
	DocumentType DocumentType   `json:"document_type"`
	Purpose      string         `json:"purpose,omitempty"` // why the document is needed
	Status       DocumentStatus `json:"status"`
	Notes        string         `json:"notes,omitempty"` // set by the processing admin
	ProcessedBy  *int64         `json:"processed_by,omitempty"`
	ProcessedAt  *time.Time     `json:"processed_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// CreateDocumentRequest is the payload for requesting a document.
type CreateDocumentRequest struct {
	DocumentType DocumentType `json:"document_type"`
	Purpose      string       `json:"purpose,omitempty"`
}

// ProcessDocumentRequest is the admin payload for moving a request through
// the workflow.
type ProcessDocumentRequest struct {
	Status DocumentStatus `json:"status"`
	Notes  string         `json:"notes,omitempty"`
}
