package testutils

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content.
// Keys may contain subdirectories, which are created as needed.
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// WriteShapefileHeader writes a minimal but well-formed shapefile main
// file containing only the 100-byte header with the given shape-type
// code.
func WriteShapefileHeader(t *testing.T, path string, shapeType int32) {
	t.Helper()
	header := make([]byte, 100)
	binary.BigEndian.PutUint32(header[0:4], 9994)       // file code
	binary.BigEndian.PutUint32(header[24:28], 50)       // file length in 16-bit words
	binary.LittleEndian.PutUint32(header[28:32], 1000)  // version
	binary.LittleEndian.PutUint32(header[32:36], uint32(shapeType))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, header, 0644))
}
