// Package environ reads configuration values from environment variables with
// fallback keys, default values and optional type conversion.
//
// Call-sites of Get are the input for the envdoc documentation generator,
// which statically scans source for them and renders a reference document of
// every environment variable a program reads.
package environ

import "os"

// ParserFunc converts the raw string value of an environment variable.
type ParserFunc func(value string) (any, error)

type options struct {
	fallbacks  []string
	def        any
	hasDefault bool
	parse      ParserFunc
	strict     bool
}

// Option configures a single Get call.
type Option func(*options)

// Default supplies the value returned when no key is set in the environment.
func Default(v any) Option {
	return func(o *options) {
		o.def = v
		o.hasDefault = true
	}
}

// Other adds fallback keys tried, in order, after the primary key.
func Other(keys ...string) Option {
	return func(o *options) {
		o.fallbacks = append(o.fallbacks, keys...)
	}
}

// Type sets the parser applied to the raw value.
func Type(parse ParserFunc) Option {
	return func(o *options) {
		o.parse = parse
	}
}

// Strict controls what happens when a value fails to parse. A strict call
// always returns the parse error; a non-strict call falls back to the
// default when one is set. Strict is scoped to the call, there is no
// process-wide mode.
func Strict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// Get returns the value of the first key set in the environment, converted by
// the configured parser. When no key is set the default is returned, or a
// NotFoundError when there is none.
func Get(key string, opts ...Option) (any, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	keys := append([]string{key}, o.fallbacks...)
	for _, k := range keys {
		value, ok := os.LookupEnv(k)
		if !ok {
			continue
		}
		if o.parse == nil {
			return value, nil
		}
		parsed, err := o.parse(value)
		if err != nil {
			if !o.strict && o.hasDefault {
				return o.def, nil
			}
			return nil, &ParseError{Key: k, Value: value, Err: err}
		}
		return parsed, nil
	}

	if o.hasDefault {
		return o.def, nil
	}
	return nil, &NotFoundError{Keys: keys}
}

// MustGet is like Get but panics on error. Intended for package-level
// variables where a missing required key should stop the program at startup.
func MustGet(key string, opts ...Option) any {
	v, err := Get(key, opts...)
	if err != nil {
		panic(err)
	}
	return v
}
