package domain

import "strings"

// Channel is a saved Slack channel offered in the channel filter.
// It is stored on disk as a bare name string.
type Channel struct {
	Name string
}

// NormalizeName trims whitespace and a leading # from user input
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "#")
	return strings.TrimSpace(name)
}

// Names returns the channel names in order
func Names(channels []Channel) []string {
	names := make([]string, len(channels))
	for i, ch := range channels {
		names[i] = ch.Name
	}
	return names
}
