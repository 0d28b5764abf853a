package feed

import "regexp"

var filenamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\.md$`)

// ExtractDate returns the date of a filename of the form YYYY-MM-DD.md.
// Anything else, including extra text around the date, is rejected.
func ExtractDate(filename string) (string, bool) {
	match := filenamePattern.FindStringSubmatch(filename)
	if match == nil {
		return "", false
	}
	return match[1], true
}
