// Package generator statically scans Go source for environment variable
// accessor calls and renders a reStructuredText reference document of every
// variable a program reads. It never touches the network, the filesystem or
// the environment itself; callers feed it source text and receive a document.
package generator

// defaultAccessor is the call name scanned for when none is configured.
const defaultAccessor = "Get"

// Options configures document generation.
type Options struct {
	// Accessor is the function name recognized at call-sites, fixed for the
	// whole invocation.
	Accessor string
	// Refs controls the reference anchor emitted before each entry.
	Refs bool
	// Filename is named in the generated-from note and in error messages.
	Filename string
}

// DefaultOptions returns the options used by the CLI: the Get accessor with
// reference anchors enabled.
func DefaultOptions() Options {
	return Options{Accessor: defaultAccessor, Refs: true}
}

// Generator turns Go source text into an environment variable reference
// document. Identical input always yields byte-identical output.
type Generator struct {
	opts     Options
	warnings []Warning
}

// New creates a Generator. An empty accessor name falls back to Get.
func New(opts Options) *Generator {
	if opts.Accessor == "" {
		opts.Accessor = defaultAccessor
	}
	return &Generator{opts: opts}
}

// Generate scans src and renders the document. Fatal conditions (unparseable
// source, malformed calls, duplicate keys) return an error and no document.
// Non-fatal conditions are collected and available from Warnings.
func (g *Generator) Generate(src []byte) (string, error) {
	g.warnings = nil
	calls, err := NewScanner(g.opts.Accessor).Scan(g.opts.Filename, src)
	if err != nil {
		return "", err
	}
	return Render(Organize(calls), g.opts, g.warn), nil
}

func (g *Generator) warn(w Warning) {
	g.warnings = append(g.warnings, w)
}

// Warnings returns the non-fatal diagnostics from the last Generate call.
func (g *Generator) Warnings() []Warning {
	return g.warnings
}

// Merge combines call maps from independently scanned files. A key or alias
// appearing in more than one file is a DuplicateKeyError, same as within a
// single file.
func Merge(maps ...map[string]*EnvCall) (map[string]*EnvCall, error) {
	merged := map[string]*EnvCall{}
	seen := map[string]bool{}
	for _, m := range maps {
		for key, call := range m {
			for _, k := range append([]string{key}, call.Aliases...) {
				if seen[k] {
					return nil, &DuplicateKeyError{Key: k, Line: call.Line}
				}
			}
			seen[key] = true
			for _, alias := range call.Aliases {
				seen[alias] = true
			}
			merged[key] = call
		}
	}
	return merged, nil
}
