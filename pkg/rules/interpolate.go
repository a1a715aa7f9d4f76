package rules

import "regexp"

// placeholderRegex matches {{name}} placeholders.
var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Interpolate replaces every {{name}} placeholder in tmpl with subs[name] in a
// single left-to-right pass. Substituted text is never scanned again.
// Placeholders without an entry render as "undefined".
func Interpolate(tmpl string, subs map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-2]
		if val, ok := subs[name]; ok {
			return val
		}
		return "undefined"
	})
}
