package respond

import (
	"regexp"
)

var (
	// Password inside a URL-style DSN
	dbPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

	// password=... in a keyword/value DSN
	kvPasswordPattern = regexp.MustCompile(`(?i)(password\s*=\s*)('[^']*'|\S+)`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
