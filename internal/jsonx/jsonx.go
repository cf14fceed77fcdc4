// Package jsonx extracts JSON payloads from untrusted model output. Models
// are instructed to answer with bare JSON but routinely wrap it in markdown
// fences or surround it with prose, so parsing is permissive by design.
package jsonx

import "strings"

// StripFences removes a leading/trailing markdown code fence if present.
func StripFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	// drop the language tag on the fence line
	if i := strings.IndexByte(t, '\n'); i >= 0 {
		t = t[i+1:]
	} else {
		return strings.TrimSpace(t)
	}
	if i := strings.LastIndex(t, "```"); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

// FirstObject returns the first balanced {...} span in s, tolerating leading
// and trailing prose. String literals and escapes are honored so braces
// inside values do not break the balance count.
func FirstObject(s string) (string, bool) {
	s = StripFences(s)
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
