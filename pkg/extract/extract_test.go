package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestExtractPlainText(t *testing.T) {
	content := "Jane Doe\nStaff Engineer\njane@example.com"
	path := write(t, "cv.txt", []byte(content))
	assert.Equal(t, content, Extract(path, "cv.txt"))
}

func TestExtractUnknownExtensionFallsBackToRawRead(t *testing.T) {
	content := "plain text under a weird extension"
	path := write(t, "cv.resume", []byte(content))
	assert.Equal(t, content, Extract(path, "cv.resume"))
}

func TestExtractFailuresReturnEmpty(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		data     []byte
	}{
		{"corrupt pdf", "cv.pdf", []byte("%PDF-1.4 not actually a pdf")},
		{"empty pdf", "cv.pdf", nil},
		{"corrupt docx", "cv.docx", []byte("PK not actually a zip")},
		{"binary under txt", "cv.txt", []byte{0xff, 0xfe, 0x00, 0x81}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := write(t, filepath.Base(tt.declared), tt.data)
			assert.Equal(t, "", Extract(path, tt.declared))
		})
	}
}

func TestExtractMissingFile(t *testing.T) {
	assert.Equal(t, "", Extract(filepath.Join(t.TempDir(), "gone.pdf"), "gone.pdf"))
	assert.Equal(t, "", Extract(filepath.Join(t.TempDir(), "gone.txt"), "gone.txt"))
}

func TestExtractKindFromDeclaredName(t *testing.T) {
	// kind comes from the declared filename, not the on-disk temp name
	content := "readable as text"
	path := write(t, "upload.tmp", []byte(content))
	assert.Equal(t, content, Extract(path, "original.TXT"))
}
