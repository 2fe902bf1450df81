package messes

import "strings"

// Plan features are stored as newline-delimited text.
func splitFeatures(raw []byte) []string {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
