package generator

import (
	"fmt"
	"strings"
)

const docTitle = "Environment Variables"

// Render serializes organized call-sites into a reStructuredText document.
// Non-fatal conditions (missing descriptions, unrecognized type literals)
// are reported through warn; rendering always completes.
func Render(groups []SectionGroup, opts Options, warn func(Warning)) string {
	var lines []string
	// Every logical block is followed by exactly one blank line.
	addLine := func(s string) { lines = append(lines, s, "") }

	lines = append(lines, docTitle)
	addLine(strings.Repeat("=", len(docTitle)))

	note := fmt.Sprintf("_This document is automatically generated from the ``%s`` calls in", opts.Accessor)
	if opts.Filename != "" {
		note += fmt.Sprintf(" ``%s``", opts.Filename)
	} else {
		note += " the source code"
	}
	note += "._"
	addLine(note)

	for _, group := range groups {
		name := group.Name
		if name == "" {
			name = "Miscellaneous"
		}
		lines = append(lines, name)
		addLine(strings.Repeat("-", len(name)))

		for _, call := range group.Calls {
			if opts.Refs {
				// A reference anchor so larger documents can link to the
				// variable with :ref:`KEY`.
				addLine(fmt.Sprintf(".. _%s:", call.Key))
			}

			if len(call.Aliases) == 0 {
				addLine(fmt.Sprintf("``%s``", call.Key))
			} else {
				marked := make([]string, len(call.Aliases))
				for i, alias := range call.Aliases {
					marked[i] = fmt.Sprintf("``%s``", alias)
				}
				addLine(fmt.Sprintf("``%s`` (aliases: %s)", call.Key, strings.Join(marked, ", ")))
			}

			if call.Desc != nil {
				for _, line := range call.Desc.Lines {
					if line != "" {
						addLine(line)
					}
				}
			} else {
				warn(Warning{Kind: WarnMissingDescription, Key: call.Key})
			}

			if def := call.Default(); def != "" {
				typ, known := call.typeWithWarning()
				if !known {
					warn(Warning{Kind: WarnUnknownType, Key: call.Key, Detail: typ})
				}
				addLine(fmt.Sprintf("**default**: %s `(%s)`", def, typ))
			}
			// Required variables show no default line; their status is
			// conveyed by the REQUIRED section itself.
		}
	}

	return strings.Join(lines, "\n")
}
