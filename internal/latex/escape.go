// Package latex escapes user-supplied text for inclusion in LaTeX source.
package latex

import "strings"

// escaper handles the characters that are structurally significant in
// LaTeX. Backslash is escaped first via \textbackslash so the replacements
// below cannot be re-interpreted.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`%`, `\%`,
	`&`, `\&`,
	`_`, `\_`,
	`#`, `\#`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape returns s with LaTeX special characters escaped so the emitted
// document stays syntactically valid whatever the user typed.
func Escape(s string) string {
	return escaper.Replace(s)
}
