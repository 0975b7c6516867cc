package documents

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hansol-labs/compliboard/internal/application"
	domain "github.com/hansol-labs/compliboard/internal/domain/documents"
)

// slotExpiry bounds both presigned upload slots and download URLs.
const slotExpiry = 15 * time.Minute

// Service implements the evidence-document use cases. Safe for
// concurrent use.
type Service struct {
	Repo  domain.Repository
	Blobs domain.BlobStore
	Clock application.Clock
}

// UploadCommand carries a direct (server-proxied) upload.
type UploadCommand struct {
	Name        string
	Description string
	ControlID   string
	TaskID      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ConfirmCommand registers an object already transferred via a
// presigned slot.
type ConfirmCommand struct {
	Name        string
	FileKey     string
	FileSize    int64
	MimeType    string
	Description string
	ControlID   string
	TaskID      string
}

// List returns the organization's documents matching the filter.
func (s *Service) List(ctx context.Context, org string, f domain.Filter) (*domain.List, error) {
	return s.Repo.List(ctx, org, f)
}

// DirectUpload streams the file to the object store and registers the
// record in one call.
func (s *Service) DirectUpload(ctx context.Context, org, userID string, cmd UploadCommand) (*domain.Document, error) {
	if strings.TrimSpace(cmd.Filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", domain.ErrValidation)
	}
	contentType := cmd.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := s.newFileKey(org, cmd.Filename)
	if err := s.Blobs.Put(ctx, key, contentType, cmd.Size, cmd.Body); err != nil {
		return nil, fmt.Errorf("storing object: %w", err)
	}

	name := cmd.Name
	if name == "" {
		name = cmd.Filename
	}
	return s.register(ctx, org, userID, &domain.Document{
		Name:        name,
		Description: cmd.Description,
		FileKey:     key,
		FileSize:    cmd.Size,
		MimeType:    contentType,
		ControlID:   cmd.ControlID,
		TaskID:      cmd.TaskID,
	})
}

// PresignUpload issues a single-use upload slot for the presigned
// path. A failed transfer must request a fresh slot; slots are never
// reused.
func (s *Service) PresignUpload(ctx context.Context, org, filename, contentType string) (*domain.UploadSlot, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", domain.ErrValidation)
	}
	key := s.newFileKey(org, filename)
	url, err := s.Blobs.PresignedPut(ctx, key, slotExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning upload: %w", err)
	}
	return &domain.UploadSlot{
		UploadURL: url,
		FileKey:   key,
		ExpiresIn: int(slotExpiry.Seconds()),
	}, nil
}

// ConfirmUpload registers a document for an object the client already
// transferred. The object must exist: confirming a never-transferred
// key fails with ErrObjectMissing instead of creating an orphan
// record.
func (s *Service) ConfirmUpload(ctx context.Context, org, userID string, cmd ConfirmCommand) (*domain.Document, error) {
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.FileKey) == "" {
		return nil, fmt.Errorf("%w: name and file_key are required", domain.ErrValidation)
	}
	storedSize, err := s.Blobs.Stat(ctx, cmd.FileKey)
	if err != nil {
		return nil, err
	}
	size := cmd.FileSize
	if storedSize > 0 {
		// The store is authoritative over the client-declared size.
		size = storedSize
	}
	mime := cmd.MimeType
	if mime == "" {
		mime = "application/octet-stream"
	}
	return s.register(ctx, org, userID, &domain.Document{
		Name:        cmd.Name,
		Description: cmd.Description,
		FileKey:     cmd.FileKey,
		FileSize:    size,
		MimeType:    mime,
		ControlID:   cmd.ControlID,
		TaskID:      cmd.TaskID,
	})
}

// Update applies a partial patch and refreshes updated_at.
func (s *Service) Update(ctx context.Context, org, id string, p domain.Patch) (*domain.Document, error) {
	doc, err := s.Repo.Get(ctx, org, id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		doc.Name = *p.Name
	}
	if p.Description != nil {
		doc.Description = *p.Description
	}
	if p.ControlID != nil {
		doc.ControlID = *p.ControlID
	}
	if p.TaskID != nil {
		doc.TaskID = *p.TaskID
	}
	doc.UpdatedAt = s.Clock.Now()
	if err := s.Repo.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the record and, best effort, the stored object. A
// failed object removal is logged but does not keep the record alive.
func (s *Service) Delete(ctx context.Context, org, id string) error {
	doc, err := s.Repo.Get(ctx, org, id)
	if err != nil {
		return err
	}
	if err := s.Blobs.Remove(ctx, doc.FileKey); err != nil {
		log.Printf("document delete: removing object %s: %v", doc.FileKey, err)
	}
	return s.Repo.Delete(ctx, org, id)
}

// DownloadURL issues a fresh time-limited download URL. Fetched
// lazily at click time, never cached.
func (s *Service) DownloadURL(ctx context.Context, org, id string) (string, error) {
	doc, err := s.Repo.Get(ctx, org, id)
	if err != nil {
		return "", err
	}
	return s.Blobs.PresignedGet(ctx, doc.FileKey, doc.Name, slotExpiry)
}

func (s *Service) register(ctx context.Context, org, userID string, doc *domain.Document) (*domain.Document, error) {
	version, err := s.Repo.NextVersion(ctx, org, doc.Name)
	if err != nil {
		return nil, err
	}
	now := s.Clock.Now()
	doc.ID = uuid.New().String()
	doc.Version = version
	doc.OrganizationID = org
	doc.UploadedByID = userID
	doc.CreatedAt = now
	doc.UpdatedAt = now
	if err := s.Repo.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return doc, nil
}

// newFileKey namespaces objects per organization; the uuid prefix
// keeps repeated filenames from colliding.
func (s *Service) newFileKey(org, filename string) string {
	return fmt.Sprintf("evidence/%s/%s-%s", org, uuid.New().String(), path.Base(filename))
}
