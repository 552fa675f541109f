package models

// FileCategory buckets an uploaded file by its MIME type. Derived once at
// upload time and never recomputed.
type FileCategory string

const (
	FileImage    FileCategory = "image"
	FileVideo    FileCategory = "video"
	FileDocument FileCategory = "document"
	FileOther    FileCategory = "other"
)

// IsValid returns true if the file category is recognized.
func (c FileCategory) IsValid() bool {
	switch c {
	case FileImage, FileVideo, FileDocument, FileOther:
		return true
	}
	return false
}

// FileEntry is a stored file reference. Size is a human-readable display
// string ("12.40 MB"), not a byte count.
type FileEntry struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Size       string       `json:"size"`
	Type       string       `json:"type"` // MIME type
	UploadedBy string       `json:"uploaded_by"`
	Timestamp  string       `json:"timestamp"`
	URL        string       `json:"url"`
	Category   FileCategory `json:"category"`
}
