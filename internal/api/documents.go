package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/shouniet/medpetrx/internal/common"
	"github.com/shouniet/medpetrx/internal/model"
)

// MaxUploadSize mirrors the backend's 10 MB document cap so oversized files
// fail fast without a round trip.
const MaxUploadSize = 10 * 1024 * 1024

var allowedUploadExts = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadDocument uploads a medical record file for a pet. The backend
// queues AI extraction in the background; poll GetDocument for status.
func (c *Client) UploadDocument(ctx context.Context, petID int64, filename string, content io.Reader) (*model.Document, error) {
	contentType, ok := allowedUploadExts[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return nil, fmt.Errorf("%w: %s (only PDF, JPG, PNG accepted)", common.ErrUnsupportedFile, filename)
	}

	data, err := io.ReadAll(io.LimitReader(content, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if len(data) > MaxUploadSize {
		return nil, fmt.Errorf("%w: %s exceeds 10 MB", common.ErrFileTooLarge, filename)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filename)))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	url := fmt.Sprintf("%s/pets/%d/documents/upload", c.baseURL, petID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(resp)
	}

	var doc model.Document
	if err := decodeJSON(resp.Body, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListDocuments returns a pet's uploaded documents, newest first.
func (c *Client) ListDocuments(ctx context.Context, petID int64) ([]model.Document, error) {
	var docs []model.Document
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pets/%d/documents", petID), nil, &docs); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// GetDocument fetches one document including any extracted data.
func (c *Client) GetDocument(ctx context.Context, docID int64) (*model.Document, error) {
	var doc model.Document
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/documents/%d", docID), nil, &doc); err != nil {
		return nil, fmt.Errorf("failed to get document %d: %w", docID, err)
	}
	return &doc, nil
}
