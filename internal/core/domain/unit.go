package domain

// Unit is one configured tech instance placed in the project graph.
// It uses InternedString for fields that are frequently repeated to save memory.
type Unit struct {
	// Name identifies the unit, e.g. "pages/index#0".
	Name InternedString
	// Node is the node path the unit belongs to.
	Node InternedString
	// Inputs are the absolute paths of the sources the unit requires.
	Inputs []InternedString
	// Outputs are the absolute paths of the targets the unit produces.
	Outputs []InternedString
	// Dependencies are the units producing one of Inputs.
	Dependencies []InternedString
}
