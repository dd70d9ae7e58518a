package villain

import (
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/supervillain/internal/platform/errors"
)

// nameSeparator splits a display name into its first and last parts.
const nameSeparator = " "

// Name is a display name split into its two parts.
type Name struct {
	First string
	Last  string
}

// String joins the parts back into the display form.
func (n Name) String() string {
	return n.First + nameSeparator + n.Last
}

// SplitFullName parses "First Last" into a Name.
//
// The input must contain exactly two non-empty parts separated by a single
// space. Leading, trailing, or doubled spaces and middle names are rejected
// rather than guessed at.
func SplitFullName(fullName string) (Name, error) {
	parts := strings.Split(fullName, nameSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Name{}, malformedNameError(fullName, parts)
	}
	return Name{First: parts[0], Last: parts[1]}, nil
}

// malformedNameError reports the parts the split produced, empty ones
// included, so doubled spaces count as an extra part.
func malformedNameError(fullName string, parts []string) error {
	tokens := len(parts)
	if fullName == "" {
		tokens = 0
	}
	return apperrors.WithMetadata(
		apperrors.CodeVillainMalformedName,
		"malformed full name "+strconv.Quote(fullName),
		map[string]string{
			"Input":  fullName,
			"Tokens": strconv.Itoa(tokens),
		},
	)
}
