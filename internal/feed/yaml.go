package feed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	itemIndent    = 2 // column of the keys inside each sequence item
	contentIndent = 4 // column of literal block lines
)

// EncodeOptions tunes how notifications are rendered
type EncodeOptions struct {
	ContentStyle yaml.Style // Scalar style for content values
}

// DefaultEncodeOptions renders content as literal block scalars.
var DefaultEncodeOptions = EncodeOptions{
	ContentStyle: yaml.LiteralStyle,
}

// Encode writes notifications to w as a YAML sequence of mappings with the
// keys date, language and content, in that order.
//
// Literal content is written directly rather than through the yaml.v3
// emitter, which refuses block style for characters outside the Basic
// Multilingual Plane and escapes them instead.
func Encode(w io.Writer, notifications []Notification, opts EncodeOptions) error {
	var buf bytes.Buffer

	if len(notifications) == 0 {
		buf.WriteString("[]\n")
	}

	for _, n := range notifications {
		literal := opts.ContentStyle&yaml.LiteralStyle != 0 && literalAllowed(n.Content)

		var item *yaml.Node
		if literal {
			item = headNode(n)
		} else {
			item = mappingNode(n, opts.ContentStyle)
		}

		head, err := encodeNode(item)
		if err != nil {
			return fmt.Errorf("encode notification %s/%s: %w", n.Language, n.Date, err)
		}
		writeItem(&buf, head)

		if literal {
			writeLiteral(&buf, "content", n.Content)
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("encode notifications: %w", err)
	}
	return nil
}

func encodeNode(node *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(itemIndent)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeItem turns an encoded top-level mapping into a sequence entry.
func writeItem(buf *bytes.Buffer, mapping []byte) {
	lines := strings.Split(strings.TrimSuffix(string(mapping), "\n"), "\n")
	pad := strings.Repeat(" ", itemIndent)
	for i, line := range lines {
		switch {
		case i == 0:
			buf.WriteString("- ")
		case line != "":
			buf.WriteString(pad)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

// writeLiteral writes key: |<hints> followed by value indented under the key.
func writeLiteral(buf *bytes.Buffer, key, value string) {
	hints := ""
	if strings.HasPrefix(value, " ") || strings.HasPrefix(value, "\t") || strings.HasPrefix(value, "\n") {
		hints = strconv.Itoa(contentIndent - itemIndent)
	}

	body := value
	switch {
	case !strings.HasSuffix(value, "\n"):
		hints += "-"
	case strings.HasSuffix(value, "\n\n"):
		hints += "+"
	}
	body = strings.TrimSuffix(body, "\n")

	pad := strings.Repeat(" ", contentIndent)
	buf.WriteString(strings.Repeat(" ", itemIndent) + key + ": |" + hints + "\n")
	for _, line := range strings.Split(body, "\n") {
		if line != "" {
			buf.WriteString(pad)
			buf.WriteString(line)
		}
		buf.WriteByte('\n')
	}
}

// literalAllowed reports whether value survives a literal block unchanged:
// printable YAML characters only, and no line breaks other than \n.
func literalAllowed(value string) bool {
	if strings.TrimSpace(value) == "" || !utf8.ValidString(value) {
		return false
	}
	for _, r := range value {
		switch {
		case r == '\t' || r == '\n':
		case r == '\r' || r == 0x85 || r == 0x2028 || r == 0x2029 || r == 0xFEFF:
			return false
		case r >= 0x20 && r <= 0x7E,
			r >= 0xA0 && r <= 0xD7FF,
			r >= 0xE000 && r <= 0xFFFD,
			r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}

func headNode(n Notification) *yaml.Node {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			stringNode("date", 0),
			stringNode(n.Date, 0),
			stringNode("language", 0),
			stringNode(n.Language, 0),
		},
	}
}

func mappingNode(n Notification, contentStyle yaml.Style) *yaml.Node {
	node := headNode(n)
	node.Content = append(node.Content,
		stringNode("content", 0),
		stringNode(n.Content, contentStyle),
	)
	return node
}

// stringNode tags values as strings so that dates are quoted rather than
// turned into timestamps by readers.
func stringNode(value string, style yaml.Style) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: value,
		Style: style,
	}
}

type notificationDoc struct {
	Date     string `yaml:"date"`
	Language string `yaml:"language"`
	Content  string `yaml:"content"`
}

// Decode reads a document produced by Encode.
func Decode(r io.Reader) ([]Notification, error) {
	var docs []notificationDoc
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode notifications: %w", err)
	}

	notifications := make([]Notification, len(docs))
	for i, d := range docs {
		notifications[i] = Notification(d)
	}
	return notifications, nil
}
