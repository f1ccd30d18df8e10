package js

// Options configures the optional grammar a Scanner recognizes. The zero value scans ES2015 script code.
type Options struct {
	// Exponentiation scans ** and **= as operators instead of two separate tokens.
	Exponentiation bool

	// Module scans for the module goal, where HTML-like comments are not recognized.
	Module bool

	// ManualTemplates always scans } as CloseBraceToken, the caller must then call ScanTemplateContinuation at the end of a template substitution.
	ManualTemplates bool
}
