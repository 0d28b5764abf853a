package feed

import "time"

const DateLayout = "2006-01-02"

// Notification is one dated, language-tagged entry of the feed
type Notification struct {
	Date     string // YYYY-MM-DD, taken from the filename
	Language string // Name of the directory the file was read from
	Content  string // File text with trailing whitespace removed
}

// Time parses Date. Unparsable dates return the zero time and false.
func (n Notification) Time() (time.Time, bool) {
	t, err := time.Parse(DateLayout, n.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
