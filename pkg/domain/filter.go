package domain

// PatternSpec is the text searched for in each arrangement.
type PatternSpec struct {
	Text    string
	IsRegex bool
}

// FilterConfig configures the filter pipeline of a single invocation.
type FilterConfig struct {
	Pattern    *PatternSpec
	IgnoreCase bool
	Unique     bool
	// ExactLength keeps only arrangements of this many characters. Zero disables it.
	ExactLength int
}

// Literal is a convenience for a substring pattern.
func Literal(text string) *PatternSpec {
	return &PatternSpec{Text: text}
}

// Regex is a convenience for a regular expression pattern.
func Regex(expr string) *PatternSpec {
	return &PatternSpec{Text: expr, IsRegex: true}
}
