// Package common provides shared utilities for output emitters.
package common

import (
	"strings"
	"text/template"

	"github.com/jmylchreest/palgen/internal/colour"
)

// TemplateData is the data handed to every emitter template: the scheme as
// key -> hex string plus the operator-chosen theme name.
type TemplateData struct {
	Theme   string
	Colours map[string]string
}

// NewTemplateData builds TemplateData from a scheme.
func NewTemplateData(scheme colour.Scheme, theme string) *TemplateData {
	return &TemplateData{
		Theme:   theme,
		Colours: scheme.ToHex(),
	}
}

// TemplateFuncs returns the standard template functions shared by all
// output emitters.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Format conversion.
		"noHash": noHashFunc,

		// String manipulation (pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"trimSuffix": trimSuffixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// noHashFunc strips the leading "#" from a hex colour string.
func noHashFunc(hex string) string {
	return strings.TrimPrefix(hex, "#")
}

// trimPrefixFunc trims a prefix; argument order suits template pipes.
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// trimSuffixFunc trims a suffix; argument order suits template pipes.
func trimSuffixFunc(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

// replaceFunc replaces all occurrences; argument order suits template pipes.
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
