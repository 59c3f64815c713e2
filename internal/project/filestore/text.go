package filestore

import (
	"bytes"
	"strings"
)

// LineEnding is the line terminator style of a file.
type LineEnding string

const (
	// LineEndingLF is Unix-style line ending (\n).
	LineEndingLF LineEnding = "lf"

	// LineEndingCRLF is Windows-style line ending (\r\n).
	LineEndingCRLF LineEnding = "crlf"

	// LineEndingCR is old Mac-style line ending (\r).
	LineEndingCR LineEnding = "cr"
)

func (le LineEnding) bytes() []byte {
	switch le {
	case LineEndingCRLF:
		return []byte("\r\n")
	case LineEndingCR:
		return []byte("\r")
	default:
		return []byte("\n")
	}
}

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Format records how a file was laid out so a save writes it back the same
// way.
type Format struct {
	LineEnding   LineEnding
	BOM          bool
	FinalNewline bool
}

// DefaultFormat is used for files the store has not loaded.
var DefaultFormat = Format{LineEnding: LineEndingLF, FinalNewline: true}

// DetectLineEnding returns the dominant line ending in content, LF when
// there is none.
func DetectLineEnding(content []byte) LineEnding {
	var lf, crlf, cr int
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				crlf++
				i++
			} else {
				cr++
			}
		case '\n':
			lf++
		}
	}

	switch {
	case crlf > lf && crlf >= cr:
		return LineEndingCRLF
	case cr > lf && cr > crlf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}

// Decode splits file content into line texts. Any mix of line endings is
// accepted. Empty content is one empty line.
func Decode(content []byte) ([]string, Format) {
	format := Format{LineEnding: DetectLineEnding(content)}
	if bytes.HasPrefix(content, bomUTF8) {
		format.BOM = true
		content = content[len(bomUTF8):]
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if strings.HasSuffix(text, "\n") {
		format.FinalNewline = true
		text = text[:len(text)-1]
	}
	return strings.Split(text, "\n"), format
}

// Encode joins line texts for writing.
func Encode(lines []string, format Format) []byte {
	var buf bytes.Buffer
	if format.BOM {
		buf.Write(bomUTF8)
	}
	nl := format.LineEnding.bytes()
	for i, l := range lines {
		buf.WriteString(l)
		if i < len(lines)-1 || format.FinalNewline {
			buf.Write(nl)
		}
	}
	return buf.Bytes()
}

// IsBinary attempts to detect if content is binary (not text).
// Uses heuristics: presence of null bytes, high ratio of non-printable characters.
func IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	sample := content[:min(len(content), 8192)]

	// Null bytes are a strong indicator of binary
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	nonText := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonText++
		}
	}
	return nonText*10 > len(sample)
}
