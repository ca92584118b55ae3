// Package content loads selected file contents as text and maps extensions to language tags.
package content

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	readErrorMarkerFormat = "**Read error**: %v"
	replacementCharacter  = "�"
)

// Load reads the file at absolutePath and decodes it as UTF-8, substituting a
// replacement character for byte sequences that cannot be decoded. When
// maxBytes is positive at most that many bytes are read. On any I/O failure an
// inline error marker is returned in place of content so that a single
// unreadable file never aborts the run.
//
// #nosec G304
func Load(absolutePath string, maxBytes int64) string {
	if maxBytes > 0 {
		fileHandle, openError := os.Open(absolutePath)
		if openError != nil {
			return fmt.Sprintf(readErrorMarkerFormat, openError)
		}
		defer fileHandle.Close()

		cappedData, readError := io.ReadAll(io.LimitReader(fileHandle, maxBytes))
		if readError != nil {
			return fmt.Sprintf(readErrorMarkerFormat, readError)
		}
		return decodeAsText(cappedData)
	}

	fileData, readError := os.ReadFile(absolutePath)
	if readError != nil {
		return fmt.Sprintf(readErrorMarkerFormat, readError)
	}
	return decodeAsText(fileData)
}

func decodeAsText(rawData []byte) string {
	return strings.ToValidUTF8(string(rawData), replacementCharacter)
}
