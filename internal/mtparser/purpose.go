package mtparser

import (
	"fmt"
	"strings"
)

// firstSegmentWidth is the room left on the first :86: line after the tag.
const firstSegmentWidth = 27

// segmentWidth is the chunk size for the ?NN continuation segments.
const segmentWidth = 27

// bookingKeyCode is the reserved segment carrying the booking-key letter.
const bookingKeyCode = 34

// purposeCodes are the ?NN segment codes usable for purpose text, in emission
// order. 30-59 are reserved for bank data and codes beyond 63 do not exist.
var purposeCodes = []int{20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 60, 61, 62, 63}

// EncodePurpose renders a purpose text (and optional booking-key letter) as
// the line sequence of a :86: block, tag excluded. The first segment is at
// most 27 characters; the rest is chunked onto ?NN continuation lines using
// the non-reserved codes. Text beyond the field's total capacity is dropped,
// matching the wire format's own limit. Purpose text must not contain the
// escape character '?'.
func EncodePurpose(purpose, bookingKey string) []string {
	var lines []string

	first := purpose
	if len(first) > firstSegmentWidth {
		first = first[:firstSegmentWidth]
	}
	lines = append(lines, first)
	rest := purpose[len(first):]

	for _, code := range purposeCodes {
		if rest == "" {
			break
		}
		chunk := rest
		if len(chunk) > segmentWidth {
			chunk = chunk[:segmentWidth]
		}
		lines = append(lines, fmt.Sprintf("?%02d%s", code, chunk))
		rest = rest[len(chunk):]
	}

	if bookingKey != "" {
		lines = append(lines, fmt.Sprintf("?%02d%s", bookingKeyCode, bookingKey))
	}
	return lines
}

// DecodePurpose is the inverse of EncodePurpose: given the collected lines of
// one :86: block it reassembles the purpose text and extracts the booking-key
// letter. Blocks without ?NN escape codes are treated as plain narrative and
// joined with newlines; in escaped blocks, segments in the reserved 30-59
// range are kept out of the purpose text.
func DecodePurpose(lines []string) (purpose, bookingKey string) {
	raw := strings.Join(lines, "\n")
	if !containsSegmentCode(raw) {
		return raw, ""
	}

	// Escape codes always start a fresh line on encode; the newlines carry no
	// information once the block is segmented.
	flat := strings.ReplaceAll(raw, "\n", "")

	var b strings.Builder
	for len(flat) > 0 {
		next := strings.IndexByte(flat, '?')
		if next < 0 {
			b.WriteString(flat)
			break
		}
		b.WriteString(flat[:next])
		// a '?' not followed by two digits is literal text, not a marker
		if next+3 > len(flat) || !isDigit(flat[next+1]) || !isDigit(flat[next+2]) {
			b.WriteByte('?')
			flat = flat[next+1:]
			continue
		}
		code := segmentCode(flat[next : next+3])
		flat = flat[next+3:]

		end := strings.IndexByte(flat, '?')
		if end < 0 {
			end = len(flat)
		}
		segment := flat[:end]
		flat = flat[end:]

		switch {
		case code == bookingKeyCode:
			if segment != "" {
				bookingKey = segment[:1]
			}
		case code >= 30 && code <= 59:
			// reserved bank data, not purpose text
		default:
			b.WriteString(segment)
		}
	}
	return b.String(), bookingKey
}

func containsSegmentCode(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '?' && isDigit(s[i+1]) && isDigit(s[i+2]) {
			return true
		}
	}
	return false
}

func segmentCode(marker string) int {
	return int(marker[1]-'0')*10 + int(marker[2]-'0')
}
