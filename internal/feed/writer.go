package feed

import (
	"bytes"
	"fmt"
	"os"
)

// WriteFile encodes notifications and writes them to path, replacing any
// previous content.
func WriteFile(path string, notifications []Notification) error {
	var buf bytes.Buffer
	if err := Encode(&buf, notifications, DefaultEncodeOptions); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a previously written feed document
func ReadFile(path string) ([]Notification, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
