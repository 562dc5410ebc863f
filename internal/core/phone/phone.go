// Package phone derives the lookup forms of a stored contact identity
package phone

import "strings"

// Forms are the variants of one identity used to probe the message store
// an Apple ID email only populates Raw, phone numbers fill all three
type Forms struct {
	// Raw is the identity as stored, surrounding whitespace trimmed
	Raw string

	// Digits is Raw with every non digit removed, "" for emails
	Digits string

	// Last10 is the national significant tail of Digits
	// "" when fewer than ten digits are present
	Last10 string
}

// Normalize derives the probe forms for one identity string
func Normalize(identity string) Forms {
	raw := strings.TrimSpace(identity)
	f := Forms{Raw: raw}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	f.Digits = b.String()

	if n := len(f.Digits); n >= 10 {
		f.Last10 = f.Digits[n-10:]
	}
	return f
}

// Empty reports whether no usable form was derived
func (f Forms) Empty() bool { return f.Raw == "" && f.Digits == "" && f.Last10 == "" }
