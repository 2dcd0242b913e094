package itinerary

import "strings"

// rawMarker is one matched <poi> tag with its byte range in the source text.
type rawMarker struct {
	Type    string
	Name    string
	Icon    string // empty for legacy-dialect matches
	Keyword string
	Start   int // offset of '<' of the opening tag
	End     int // offset just past "</poi>"
}

const (
	openTag  = "<poi"
	closeTag = "</poi>"
)

// scanMarkers finds every POI tag in document order. The current dialect
// (type+name+icon) is tried first; only when it matches nothing at all does
// the scan fall back to the legacy dialect (type+name). The two passes are
// never merged.
func scanMarkers(text string) []rawMarker {
	markers := scanDialect(text, true)
	if len(markers) == 0 {
		markers = scanDialect(text, false)
	}
	return markers
}

func scanDialect(text string, withIcon bool) []rawMarker {
	var markers []rawMarker
	pos := 0
	for {
		idx := strings.Index(text[pos:], openTag)
		if idx < 0 {
			return markers
		}
		start := pos + idx
		m, end, ok := parseMarker(text, start, withIcon)
		if !ok {
			pos = start + 1
			continue
		}
		m.Start = start
		m.End = end
		markers = append(markers, m)
		pos = end
	}
}

// parseMarker tries to read one full tag whose "<poi" starts at start.
// Attribute order is fixed: type, name, then icon for the current dialect.
// The keyword must be non-empty and must not contain '<'.
func parseMarker(text string, start int, withIcon bool) (rawMarker, int, bool) {
	var m rawMarker
	i := start + len(openTag)

	var ok bool
	if i, ok = skipSpace(text, i); !ok {
		return m, 0, false
	}
	if m.Type, i, ok = parseAttr(text, i, "type"); !ok {
		return m, 0, false
	}
	if i, ok = skipSpace(text, i); !ok {
		return m, 0, false
	}
	if m.Name, i, ok = parseAttr(text, i, "name"); !ok {
		return m, 0, false
	}
	if withIcon {
		if i, ok = skipSpace(text, i); !ok {
			return m, 0, false
		}
		if m.Icon, i, ok = parseAttr(text, i, "icon"); !ok {
			return m, 0, false
		}
	}
	if i >= len(text) || text[i] != '>' {
		return m, 0, false
	}
	i++
	kwStart := i
	for i < len(text) && text[i] != '<' {
		i++
	}
	if i == kwStart || !strings.HasPrefix(text[i:], closeTag) {
		return m, 0, false
	}
	m.Keyword = text[kwStart:i]
	return m, i + len(closeTag), true
}

// skipSpace requires at least one whitespace byte.
func skipSpace(text string, i int) (int, bool) {
	j := i
	for j < len(text) && isSpace(text[j]) {
		j++
	}
	return j, j > i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// parseAttr reads `key="value"` with a non-empty, quote-free value.
func parseAttr(text string, i int, key string) (string, int, bool) {
	prefix := key + `="`
	if !strings.HasPrefix(text[i:], prefix) {
		return "", 0, false
	}
	i += len(prefix)
	vStart := i
	for i < len(text) && text[i] != '"' {
		i++
	}
	if i == vStart || i >= len(text) {
		return "", 0, false
	}
	return text[vStart:i], i + 1, true
}
