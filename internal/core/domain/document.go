package domain

// Document is the evaluated data artifact.
// Value holds plain Go values: map[string]any, []any, string, int64, float64, bool or nil.
// A Document is shared read-only between all targets rendered in one invocation.
type Document struct {
	Source string
	Value  any
}

// Catalog is an evaluated locale catalog.
type Catalog struct {
	Source string
	Value  any
}

// RenderRequest carries everything a renderer needs to produce one target.
type RenderRequest struct {
	Target        BuildTarget
	TemplatePath  string
	LocaleAllPath string
	LocalePath    string
	Locale        LocaleContext
	Document      *Document
}
