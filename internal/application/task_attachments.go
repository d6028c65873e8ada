package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/pkg/helpers"
)

var ErrStorageDisabled = errors.New("attachment storage not configured")

// AddAttachment uploads a file to object storage and records it against the
// task. Visibility follows the read rule: any admin or the assignee.
func (s *TaskService) AddAttachment(ctx context.Context, caller Identity, taskID, filename, contentType string, r io.Reader) (*entity.Attachment, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, ErrStorageDisabled
	}
	t, err := s.visibleTask(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("tasks", t.ID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}

	a := &entity.Attachment{
		TaskID:      t.ID,
		FileName:    filename,
		ContentType: contentType,
		URL:         url,
		UploadedBy:  caller.UserID,
	}
	if err := s.Tasks.AddAttachment(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
