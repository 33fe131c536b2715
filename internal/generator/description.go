package generator

import "strings"

const (
	directiveDefault = ".. default::"
	directiveType    = ".. type::"
	directiveSection = ".. section::"
)

// parseDescription splits a documentation block into prose lines and
// directive overrides. A line matches at most one directive, directive lines
// are dropped from the prose, and for a repeated directive the last
// occurrence wins.
func parseDescription(text string) *Description {
	desc := &Description{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, directiveDefault):
			desc.Default = strings.TrimSpace(strings.TrimPrefix(line, directiveDefault))
		case strings.HasPrefix(line, directiveType):
			desc.Type = strings.TrimSpace(strings.TrimPrefix(line, directiveType))
		case strings.HasPrefix(line, directiveSection):
			desc.Section = strings.TrimSpace(strings.TrimPrefix(line, directiveSection))
		default:
			desc.Lines = append(desc.Lines, line)
		}
	}
	return desc
}
