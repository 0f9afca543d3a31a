package resume

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"careeros/internal/config"
	"careeros/internal/dispatch"
	"careeros/pkg/blob"
	"careeros/pkg/broker"
	"careeros/pkg/document"
	"careeros/pkg/domain"
	"careeros/pkg/logger"
	"careeros/pkg/serrors"
	"careeros/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure which resumes are accepted and where they are sent.
type Options struct {
	// MaxFileSize is the largest accepted file in bytes.
	MaxFileSize int64
	// MinTextLength is the minimum number of characters the file must contain.
	MinTextLength int
	// Queue is the broker queue uploads are dispatched to.
	Queue string
	// MaxAttempts is the number of publish attempts of the dispatch job.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxFileSize:   cfg.Upload.MaxFileSize,
		MinTextLength: cfg.Upload.MinTextLength,
		Queue:         cfg.RabbitMQ.Queues.ResumeProcessing,
		MaxAttempts:   cfg.Dispatch.MaxAttempts,
	}
}

// uploader is the concrete implementation of the Uploader interface.
type uploader struct {
	options Options
	storage storage.Storage
	blobs   blob.Store
}

// Upload sniffs and extracts the file before anything is stored, so files the
// extraction worker could not read are rejected up front. The object is
// removed again when the partial profile could not be recorded.
func (u uploader) Upload(ctx context.Context, userID domain.UserID, fileName string, data []byte) (*Upload, error) {
	if len(data) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "file is required")
	}
	if int64(len(data)) > u.options.MaxFileSize {
		return nil, serrors.With(serrors.ErrBadRequest, "file is larger than %d bytes", u.options.MaxFileSize)
	}

	docType, err := document.Sniff(fileName, data)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "only PDF and DOCX resumes are supported")
	}

	text, err := document.ExtractText(docType.MIME, data)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnprocessable, err, "could not read the resume")
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < u.options.MinTextLength {
		return nil, serrors.With(serrors.ErrBadRequest, "resume does not contain enough text")
	}

	fileName = cleanFileName(fileName, docType.Ext)
	key := path.Join("resumes", userID.String(), uuid.NewString()+docType.Ext)
	ctx = logger.WithFields(ctx, zap.String("userID", userID.String()), zap.String("fileKey", key))

	obj, err := u.blobs.Put(ctx, key, docType.MIME, data)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not store resume")
	}

	if err := u.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		partial, err := tx.StorePartialProfile(ctx, domain.PartialProfile{
			UserID:   userID,
			FileURL:  obj.URL,
			FileKey:  obj.Key,
			FileName: fileName,
			Status:   domain.PartialProfileStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store partial profile: %w", err)
		}

		return dispatch.Enqueue(ctx, tx, u.options.Queue,
			broker.ResumeMessage{UserID: userID.String(), FileURL: obj.URL, FileName: fileName, FileKey: obj.Key},
			dispatch.Subject{Kind: dispatch.SubjectPartialProfile, ID: partial.ID.String()},
			u.options.MaxAttempts)
	}); err != nil {
		if derr := u.blobs.Delete(ctx, obj.Key); derr != nil {
			logger.Warn(ctx, "could not delete orphaned resume", zap.Error(derr))
		}

		return nil, fmt.Errorf("could not queue resume: %w", err)
	}

	logger.Info(ctx, "resume queued for extraction", zap.Int("size", len(data)))

	return &Upload{
		UploadedBy: userID,
		FileKey:    obj.Key,
		FileName:   fileName,
		FileURL:    obj.URL,
	}, nil
}

// cleanFileName drops any directory part of the client supplied name and
// falls back to a generic name.
func cleanFileName(name, ext string) string {
	name = strings.TrimSpace(filepath.Base(strings.ReplaceAll(name, "\\", "/")))
	if name == "" || name == "." || name == "/" {
		return "resume" + ext
	}

	return name
}

// New creates a new Uploader storing files in blobs.
func New(storage storage.Storage, blobs blob.Store, options Options) Uploader {
	return &uploader{
		options: options,
		storage: storage,
		blobs:   blobs,
	}
}
