package output

import (
	"os"
)

// WriteFile writes prefix, body and suffix to path, replacing any existing file.
// The write is not atomic.
func WriteFile(path, prefix string, body []byte, suffix string) error {
	data := make([]byte, 0, len(prefix)+len(body)+len(suffix))
	data = append(data, prefix...)
	data = append(data, body...)
	data = append(data, suffix...)
	return os.WriteFile(path, data, 0644)
}
