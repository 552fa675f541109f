// Package files turns uploads into stored file entries. Ingestion is
// one-way: entries are classified and sized once at upload and never
// recomputed.
package files

import (
	"fmt"
	"strings"

	"github.com/zentryhq/zentry/internal/metrics"
	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/store"
)

// Upload is the caller-supplied description of an incoming file.
type Upload struct {
	Name       string `json:"name"`
	MIME       string `json:"mime"`
	SizeBytes  int64  `json:"size_bytes"`
	UploadedBy string `json:"uploaded_by"`
	Timestamp  string `json:"timestamp"`
}

// Categorize buckets a MIME type. Anything unrecognized is other; there is
// no rejection path.
func Categorize(mime string) models.FileCategory {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return models.FileImage
	case strings.HasPrefix(mime, "video/"):
		return models.FileVideo
	case mime == "application/pdf":
		return models.FileDocument
	default:
		return models.FileOther
	}
}

// FormatSize renders a byte count as the display string stored on the
// entry, e.g. "12.40 MB".
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/1024/1024)
}

// Ingest classifies the upload, records it in the store and returns the
// stored entry.
func Ingest(s *store.Store, up Upload) models.FileEntry {
	id := s.NewID()
	entry := s.AddFile(models.FileEntry{
		ID:         id,
		Name:       up.Name,
		Size:       FormatSize(up.SizeBytes),
		Type:       up.MIME,
		UploadedBy: up.UploadedBy,
		Timestamp:  up.Timestamp,
		URL:        "/v1/files/" + id,
		Category:   Categorize(up.MIME),
	})
	metrics.Inc(metrics.FileIngests)
	return entry
}
