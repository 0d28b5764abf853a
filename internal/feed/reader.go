package feed

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// ReadDir reads every dated markdown file directly inside dir. The directory
// name becomes the language of each notification. Problems with the directory
// or with single files are logged and skipped.
func ReadDir(dir string, logger *log.Logger) []Notification {
	var notifications []Notification

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("Warning: directory %s does not exist", dir)
		} else {
			logger.Printf("Warning: could not read directory %s: %v", dir, err)
		}
		return notifications
	}

	language := filepath.Base(dir)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}

		date, ok := ExtractDate(name)
		if !ok {
			logger.Printf("Warning: could not extract date from filename: %s", name)
			continue
		}

		path := filepath.Join(dir, name)
		content, err := readContent(path)
		if err != nil {
			logger.Printf("Warning: failed to read file %s: %v", path, err)
			continue
		}

		notifications = append(notifications, Notification{
			Date:     date,
			Language: language,
			Content:  content,
		})
	}

	return notifications
}

func readContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return strings.TrimRightFunc(normalizeNewlines(string(data)), unicode.IsSpace), nil
}

// normalizeNewlines turns \r\n and lone \r line endings into \n.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Collect reads each directory in order and concatenates the results.
func Collect(dirs []string, logger *log.Logger) []Notification {
	var all []Notification
	for _, dir := range dirs {
		all = append(all, ReadDir(dir, logger)...)
	}
	return all
}
