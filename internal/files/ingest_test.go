package files_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentryhq/zentry/internal/files"
	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/store"
)

func TestCategorize(t *testing.T) {
	assert.Equal(t, models.FileImage, files.Categorize("image/png"))
	assert.Equal(t, models.FileImage, files.Categorize("image/jpeg"))
	assert.Equal(t, models.FileVideo, files.Categorize("video/mp4"))
	assert.Equal(t, models.FileDocument, files.Categorize("application/pdf"))
	assert.Equal(t, models.FileOther, files.Categorize("application/zip"))
	assert.Equal(t, models.FileOther, files.Categorize(""))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "12.40 MB", files.FormatSize(13002342))
	assert.Equal(t, "1.00 MB", files.FormatSize(1048576))
	assert.Equal(t, "0.00 MB", files.FormatSize(0))
}

func TestIngest_StoresClassifiedEntry(t *testing.T) {
	st := store.New()

	entry := files.Ingest(st, files.Upload{
		Name:       "Infrastructure_Map_2024.pdf",
		MIME:       "application/pdf",
		SizeBytes:  13002342,
		UploadedBy: "Abhinav Sharma",
		Timestamp:  "2026-08-28T10:00:00Z",
	})

	require.NotEmpty(t, entry.ID)
	assert.Equal(t, models.FileDocument, entry.Category)
	assert.Equal(t, "12.40 MB", entry.Size)
	assert.Equal(t, "/v1/files/"+entry.ID, entry.URL)

	stored, ok := st.GetFile(entry.ID)
	require.True(t, ok)
	assert.Equal(t, entry, stored)
}
