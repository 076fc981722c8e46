// Package sanitize strips markup from user-supplied text before it is
// persisted. Descriptions are stored as plain text; clients render them
// verbatim.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Text removes all HTML from the input and trims surrounding whitespace.
func Text(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}
