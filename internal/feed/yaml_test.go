package feed

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEncode_KeyOrderAndLiteralContent(t *testing.T) {
	notifications := []Notification{
		{Date: "2025-01-02", Language: "ko", Content: "# 공지\n\n- 첫째\n- 둘째: \"따옴표\""},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, notifications, DefaultEncodeOptions); err != nil {
		t.Fatalf("encode error: %v", err)
	}
	out := buf.String()

	dateIdx := strings.Index(out, "date:")
	langIdx := strings.Index(out, "language:")
	contentIdx := strings.Index(out, "content:")
	if dateIdx < 0 || langIdx < 0 || contentIdx < 0 {
		t.Fatalf("missing keys in output:\n%s", out)
	}
	if !(dateIdx < langIdx && langIdx < contentIdx) {
		t.Errorf("expected key order date, language, content:\n%s", out)
	}

	if !strings.Contains(out, "content: |") {
		t.Errorf("expected literal block content:\n%s", out)
	}
	if !strings.Contains(out, "공지") || strings.Contains(out, "\\u") {
		t.Errorf("expected native unicode output:\n%s", out)
	}
	if strings.Contains(out, "\\n") {
		t.Errorf("expected unescaped line breaks:\n%s", out)
	}
}

func TestEncode_SingleLineContentUsesBlock(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []Notification{{Date: "2025-01-01", Language: "en", Content: "Hello"}}, DefaultEncodeOptions)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	if !strings.Contains(buf.String(), "content: |-") {
		t.Errorf("expected '|-' block for single line content:\n%s", buf.String())
	}
}

func TestEncode_DatesStayStrings(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []Notification{{Date: "2025-01-01", Language: "en", Content: "Hello"}}, DefaultEncodeOptions)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	var generic []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &generic); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(generic) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(generic))
	}
	if _, ok := generic[0]["date"].(string); !ok {
		t.Errorf("expected date to decode as string, got %T", generic[0]["date"])
	}
}

func encodeString(t *testing.T, notifications []Notification) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, notifications, DefaultEncodeOptions); err != nil {
		t.Fatalf("encode error: %v", err)
	}
	return buf.String()
}

func assertNoEscapes(t *testing.T, out string) {
	t.Helper()
	for _, esc := range []string{"\\U", "\\u", "\\n", "\\r", "\\t"} {
		if strings.Contains(out, esc) {
			t.Errorf("expected no %s escapes in output:\n%s", esc, out)
		}
	}
}

func TestEncode_EmojiStaysInLiteralBlock(t *testing.T) {
	out := encodeString(t, []Notification{
		{Date: "2025-01-02", Language: "ko", Content: "새 기능 🎉\n둘째 줄"},
	})

	if !strings.Contains(out, "  content: |-\n    새 기능 🎉\n    둘째 줄\n") {
		t.Errorf("expected emoji verbatim inside literal block:\n%s", out)
	}
	assertNoEscapes(t, out)
}

func TestEncode_Layout(t *testing.T) {
	out := encodeString(t, []Notification{
		{Date: "2025-01-02", Language: "ko", Content: "안녕"},
		{Date: "2025-01-01", Language: "en", Content: "Hello\n\nWorld"},
	})

	expected := "- date: \"2025-01-02\"\n" +
		"  language: ko\n" +
		"  content: |-\n" +
		"    안녕\n" +
		"- date: \"2025-01-01\"\n" +
		"  language: en\n" +
		"  content: |-\n" +
		"    Hello\n" +
		"\n" +
		"    World\n"
	if out != expected {
		t.Errorf("unexpected document:\n%s\nwant:\n%s", out, expected)
	}
}

func TestEncode_IndentationIndicator(t *testing.T) {
	content := "  indented first\nsecond"
	out := encodeString(t, []Notification{{Date: "2025-01-01", Language: "en", Content: content}})

	if !strings.Contains(out, "content: |2-\n") {
		t.Errorf("expected explicit indentation indicator:\n%s", out)
	}

	decoded, err := Decode(strings.NewReader(out))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if decoded[0].Content != content {
		t.Errorf("expected %q, got %q", content, decoded[0].Content)
	}
}

func TestEncode_CRLFSourcedContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "en")
	writeFile(t, dir, "2025-06-01.md", "line one\r\n🎉 line two\r\n")

	logger, _ := testLogger()
	out := encodeString(t, ReadDir(dir, logger))

	if !strings.Contains(out, "content: |-\n    line one\n    🎉 line two\n") {
		t.Errorf("expected CRLF file as literal block:\n%s", out)
	}
	assertNoEscapes(t, out)
}

func TestEncode_FallsBackForUnprintable(t *testing.T) {
	content := "bell\x07 inside"
	out := encodeString(t, []Notification{{Date: "2025-01-01", Language: "en", Content: content}})

	if strings.Contains(out, "content: |") {
		t.Errorf("expected quoted scalar for control characters:\n%s", out)
	}

	decoded, err := Decode(strings.NewReader(out))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if decoded[0].Content != content {
		t.Errorf("expected %q, got %q", content, decoded[0].Content)
	}
}

func TestEncodeDecode_ContentFidelity(t *testing.T) {
	tests := []struct {
		name    string
		content string
		block   bool
	}{
		{"single line", "Hello", true},
		{"multi line", "line one\nline two\n\n  indented line", true},
		{"korean and emoji", "안녕하세요\n새 기능이 추가되었습니다 🎉", true},
		{"yaml lookalike", "key: value\n- not a list\n# not a comment\n---\n...", true},
		{"trailing spaces inside", "trailing spaces inside   \nnext", true},
		{"tab first", "\ttab first\n\tsecond", true},
		{"leading break", "\nafter blank", true},
		{"keep trailing breaks", "ends with breaks\n\n", true},
		{"clip trailing break", "ends with one break\n", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := encodeString(t, []Notification{{Date: "2025-01-01", Language: "en", Content: tt.content}})

			if tt.block {
				if !strings.Contains(out, "content: |") {
					t.Errorf("expected literal block:\n%s", out)
				}
				assertNoEscapes(t, out)
			}

			decoded, err := Decode(strings.NewReader(out))
			if err != nil {
				t.Fatalf("decode error: %v\n%s", err, out)
			}
			if len(decoded) != 1 {
				t.Fatalf("expected 1 notification, got %d", len(decoded))
			}
			if decoded[0].Content != tt.content {
				t.Errorf("expected %q, got %q\n%s", tt.content, decoded[0].Content, out)
			}
		})
	}
}

func TestEncode_Empty(t *testing.T) {
	out := encodeString(t, nil)

	decoded, err := Decode(strings.NewReader(out))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected 0 notifications, got %d", len(decoded))
	}
}

func TestDecode_Empty(t *testing.T) {
	notifications, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifications) != 0 {
		t.Errorf("expected 0 notifications, got %d", len(notifications))
	}
}

func TestDecode_Invalid(t *testing.T) {
	if _, err := Decode(strings.NewReader("date: [unterminated")); err == nil {
		t.Error("expected error for malformed document")
	}
}
