package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is a case document. The text body lives in the content column;
// binary attachments live in object storage under StorageKey.
type Document struct {
	ID           uuid.UUID  `json:"id"`
	CaseID       uuid.UUID  `json:"case_id"`
	Title        string     `json:"title"`
	DocType      string     `json:"type"`
	Content      *string    `json:"content"`
	UploadDate   time.Time  `json:"upload_date"`
	LastModified time.Time  `json:"last_modified"`
	Tags         Tags       `json:"tags"`
	StorageKey   *string    `json:"storage_key,omitempty"`
	AuthorID     *uuid.UUID `json:"author_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Version      int        `json:"version"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// AttachmentURL is a temporary presigned URL for uploading or downloading
// a document's binary attachment.
type AttachmentURL struct {
	DocumentID uuid.UUID `json:"document_id"`
	URL        string    `json:"url"`
}
