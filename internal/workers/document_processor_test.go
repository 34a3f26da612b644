// internal/workers/document_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sellerhub/opsdash-be/internal/workers"
	"github.com/sellerhub/opsdash-be/test/helpers"
	"github.com/sellerhub/opsdash-be/test/mocks"
)

// minimalPDF parses without error but contains no extractable text.
var minimalPDF = []byte(`%PDF-1.4
1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj 2 0 obj<</Type/Pages/Count 1/Kids[3 0 R]>>endobj 3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 612 792]>>endobj
xref
0 4
0000000000 65535 f
0000000010 00000 n
0000000059 00000 n
0000000112 00000 n
trailer<</Size 4/Root 1 0 R>>
startxref
178
%%EOF`)

func TestDocumentProcessor_ProcessDocument(t *testing.T) {
	documentID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(documents *mocks.MockDocumentRepository, storage *mocks.MockStorageClient)
		expectedError bool
		errorContains string
	}{
		{
			name: "unextractable_pdf_marks_document_failed",
			setupMocks: func(documents *mocks.MockDocumentRepository, storage *mocks.MockStorageClient) {
				storage.EXPECT().
					Download(gomock.Any(), "suppliers/sup-1/doc.pdf").
					Return(minimalPDF, nil)
				documents.EXPECT().
					MarkFailed(gomock.Any(), documentID, gomock.Any()).
					Return(nil)
			},
			expectedError: false,
		},
		{
			name: "download_failure_is_retryable",
			setupMocks: func(documents *mocks.MockDocumentRepository, storage *mocks.MockStorageClient) {
				storage.EXPECT().
					Download(gomock.Any(), "suppliers/sup-1/doc.pdf").
					Return(nil, errors.New("connection reset"))
			},
			expectedError: true,
			errorContains: "failed to download document",
		},
		{
			name: "corrupt_pdf_marks_document_failed",
			setupMocks: func(documents *mocks.MockDocumentRepository, storage *mocks.MockStorageClient) {
				storage.EXPECT().
					Download(gomock.Any(), "suppliers/sup-1/doc.pdf").
					Return([]byte("not a pdf at all"), nil)
				documents.EXPECT().
					MarkFailed(gomock.Any(), documentID, gomock.Any()).
					Return(nil)
			},
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			documents := mocks.NewMockDocumentRepository(ctrl)
			storage := mocks.NewMockStorageClient(ctrl)

			processor := workers.NewDocumentProcessor(documents, storage, t.TempDir(), helpers.TestLogger())

			tt.setupMocks(documents, storage)

			payload := workers.DocumentJobPayload{
				DocumentID: documentID,
				FileKey:    "suppliers/sup-1/doc.pdf",
				SupplierID: "sup-1",
			}
			payloadBytes, err := json.Marshal(payload)
			require.NoError(t, err)

			task := asynq.NewTask(workers.TypeDocumentProcess, payloadBytes)
			err = processor.ProcessDocument(context.Background(), task)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDocumentProcessor_RejectsBadPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	processor := workers.NewDocumentProcessor(
		mocks.NewMockDocumentRepository(ctrl),
		mocks.NewMockStorageClient(ctrl),
		t.TempDir(),
		helpers.TestLogger(),
	)

	task := asynq.NewTask(workers.TypeDocumentProcess, []byte("{broken"))
	err := processor.ProcessDocument(context.Background(), task)
	assert.ErrorContains(t, err, "failed to unmarshal payload")
}
