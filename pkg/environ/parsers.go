package environ

import (
	"fmt"
	"strconv"
)

// Str passes the raw value through unchanged.
func Str(value string) (any, error) {
	return value, nil
}

// Int parses a decimal integer.
func Int(value string) (any, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Float parses a floating point number.
func Float(value string) (any, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

var trueValues = map[string]bool{
	"T": true, "Y": true, "1": true,
	"True": true, "true": true, "TRUE": true,
	"Yes": true, "yes": true, "YES": true,
}

var falseValues = map[string]bool{
	"F": true, "N": true, "0": true,
	"False": true, "false": true, "FALSE": true,
	"No": true, "no": true, "NO": true,
	"": true,
}

// Bool parses common boolean spellings ("T", "Y", "1", "True", "yes" and
// their negative counterparts). The empty string is false.
func Bool(value string) (any, error) {
	if trueValues[value] {
		return true, nil
	}
	if falseValues[value] {
		return false, nil
	}
	return nil, fmt.Errorf("cannot parse %q to a bool", value)
}
