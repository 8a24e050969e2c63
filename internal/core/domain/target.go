// Package domain contains the core domain models of the localized HTML build tech.
package domain

// SourceRole identifies what a tracked file is used for by the tech.
type SourceRole string

const (
	// RoleTemplate is the template artifact the document is rendered through.
	RoleTemplate SourceRole = "template"
	// RoleData is the data artifact evaluated into the document.
	RoleData SourceRole = "data"
	// RoleLocaleAll is the catalog holding phrases for every locale.
	RoleLocaleAll SourceRole = "locale-all"
	// RoleLocaleOne is the catalog holding phrases for the selected locale.
	RoleLocaleOne SourceRole = "locale-one"
	// RoleDestination is the produced HTML file itself.
	RoleDestination SourceRole = "destination"
)

// SourceRoles lists the four input roles in the order they are required and fingerprinted.
var SourceRoles = []SourceRole{RoleTemplate, RoleData, RoleLocaleAll, RoleLocaleOne}

// CacheLabel returns the label under which the role's fingerprint is stored.
func (r SourceRole) CacheLabel() string {
	return string(r) + "-file"
}

// SourceReference is one input of the tech resolved to a target name and a path.
type SourceReference struct {
	Role SourceRole
	// Name is the target name relative to the node directory.
	Name string
	// Path is the absolute path of the file.
	Path string
}

// BuildTarget is a file the tech produces.
type BuildTarget struct {
	// Name is the logical target name relative to the node directory.
	Name InternedString
	// Path is the absolute path of the file.
	Path string
}

// String returns the logical name of the target.
func (t BuildTarget) String() string {
	return t.Name.String()
}

// TechOptions is the configuration surface of the tech. Every field is optional.
//
// Target names may contain "?" which is replaced with the node name and "{lang}"
// which is replaced with the selected locale.
type TechOptions struct {
	TemplateTarget string `yaml:"templateTarget"`
	DataTarget     string `yaml:"dataTarget"`
	LangAllTarget  string `yaml:"langAllTarget"`
	LangTarget     string `yaml:"langTarget"`
	DestTarget     string `yaml:"destTarget"`
	Lang           string `yaml:"lang"`
}

const (
	// DefaultTemplateTarget is the template artifact used when TemplateTarget is empty.
	DefaultTemplateTarget = "?.tmpl"
	// DefaultDataTarget is the data artifact used when DataTarget is empty.
	DefaultDataTarget = "?.data.hcl"
	// DefaultLangAllTarget is the all-locales catalog used when LangAllTarget is empty.
	DefaultLangAllTarget = "?.lang.all.hcl"
	// DefaultLangTarget is the single-locale catalog used when LangTarget is empty.
	DefaultLangTarget = "?.lang.{lang}.hcl"
	// DefaultDestTarget is the destination used when DestTarget is empty.
	DefaultDestTarget = "?.{lang}.html"

	// NodeMask is replaced with the node name in target names.
	NodeMask = "?"
	// LangMask is replaced with the locale identifier in target names.
	LangMask = "{lang}"
)
