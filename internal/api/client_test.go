package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouniet/medpetrx/internal/common"
	"github.com/shouniet/medpetrx/internal/model"
	"github.com/shouniet/medpetrx/internal/review"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "test-token")
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("", "token")
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestGetDocumentParsesExtractedData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents/7", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		// vaccines/allergies/problems keys deliberately absent.
		_, _ = w.Write([]byte(`{
			"id": 7,
			"pet_id": 3,
			"filename": "visit.pdf",
			"upload_date": "2026-05-01T10:00:00Z",
			"extraction_status": "completed",
			"extracted_data": {
				"medications": [{"drug_name": "Amoxicillin", "confidence": 0.92}]
			}
		}`))
	})

	doc, err := client.GetDocument(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, model.ExtractionCompleted, doc.ExtractionStatus)
	require.Len(t, doc.ExtractedData["medications"], 1)
	assert.Equal(t, "Amoxicillin", doc.ExtractedData["medications"][0]["drug_name"])
	assert.InDelta(t, 0.92, doc.ExtractedData["medications"][0].Confidence(), 1e-9)
	assert.Nil(t, doc.ExtractedData["vaccines"], "absent categories stay absent; the reconciler totalizes them")
}

func TestConfirmExtractionWireFormat(t *testing.T) {
	var received map[string][]map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pets/3/documents/7/confirm", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"medications_saved": 1,
			"vaccines_saved": 0,
			"allergies_saved": 0,
			"problems_saved": 0,
			"allergy_warnings": [{"drug_name": "Amoxicillin", "allergy_substance": "Penicillin", "severity": "Severe"}]
		}`))
	})

	state := review.New(map[string][]model.ExtractedItem{
		"medications": {
			{"drug_name": "Amoxicillin", "confidence": 0.92},
			{"drug_name": "Carprofen", "confidence": 0.4},
		},
	})
	state.SetDecision(model.CategoryMedications, 1, model.DecisionRejected, nil)

	result, err := client.ConfirmExtraction(context.Background(), 3, 7, state.Payload())
	require.NoError(t, err)

	// Rejected items must cross the wire, tagged.
	require.Len(t, received["medications"], 2)
	assert.Equal(t, "approved", received["medications"][0]["decision"])
	assert.Equal(t, "rejected", received["medications"][1]["decision"])
	assert.Equal(t, "Carprofen", received["medications"][1]["drug_name"])
	// Empty categories serialize as [], never null.
	require.Contains(t, received, "vaccines")
	assert.NotNil(t, received["vaccines"])

	assert.Equal(t, 1, result.TotalSaved())
	require.Len(t, result.AllergyWarnings, 1)
	assert.Equal(t, "Amoxicillin", result.AllergyWarnings[0].DrugName)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		want   error
		name   string
		detail string
		status int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: common.ErrUnauthorized},
		{name: "consent required", status: http.StatusForbidden, detail: "Consent required", want: common.ErrConsentRequired},
		{name: "forbidden", status: http.StatusForbidden, detail: "nope", want: common.ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, detail: "Document not found", want: common.ErrNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, want: common.ErrRateLimit},
		{name: "validation error", status: http.StatusBadRequest, detail: "invalid date", want: common.ErrBadRequest},
		{name: "server error", status: http.StatusInternalServerError, want: common.ErrServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": tt.detail})
			})

			_, err := client.GetDocument(context.Background(), 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			if tt.detail != "" {
				assert.Contains(t, err.Error(), tt.detail)
			}
		})
	}
}

func TestConfirmFailureReturnsError(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	state := review.New(map[string][]model.ExtractedItem{
		"medications": {{"drug_name": "Amoxicillin", "confidence": 0.92}},
	})

	_, err := client.ConfirmExtraction(context.Background(), 3, 7, state.Payload())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrServerError)
	assert.Equal(t, 1, calls, "confirm is submitted exactly once per call, never auto-retried")
}

func TestUploadDocumentValidation(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("invalid uploads must not reach the server")
	})

	_, err := client.UploadDocument(context.Background(), 3, "notes.txt", strings.NewReader("hi"))
	assert.ErrorIs(t, err, common.ErrUnsupportedFile)

	big := bytes.Repeat([]byte("x"), MaxUploadSize+1)
	_, err = client.UploadDocument(context.Background(), 3, "scan.pdf", bytes.NewReader(big))
	assert.ErrorIs(t, err, common.ErrFileTooLarge)
}

func TestUploadDocumentSendsMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pets/3/documents/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "visit.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 9, "pet_id": 3, "filename": "visit.pdf", "upload_date": "2026-05-01T10:00:00Z", "extraction_status": "pending"}`))
	})

	doc, err := client.UploadDocument(context.Background(), 3, "/tmp/visit.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), doc.ID)
	assert.Equal(t, model.ExtractionPending, doc.ExtractionStatus)
}
