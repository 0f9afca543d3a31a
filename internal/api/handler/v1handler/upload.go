package v1handler

import (
	"errors"
	"io"
	"net/http"

	"careeros/pkg/serrors"
)

// multipartOverhead is the allowance for multipart headers around the file.
const multipartOverhead = 64 << 10

// UploadResume accepts a multipart "file" field and queues it for extraction.
func (h Handler) UploadResume(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxUploadSize+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "file is larger than %d bytes", h.options.MaxUploadSize)
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "file is required")
	}
	defer func() { _ = file.Close() }()

	// one extra byte lets the uploader see an oversized file
	data, err := io.ReadAll(io.LimitReader(file, h.options.MaxUploadSize+1))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read file")
	}

	res, err := h.deps.Uploader.Upload(r.Context(), GetUserIDFromContext(r.Context()), header.Filename, data)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, res)

	return nil
}
