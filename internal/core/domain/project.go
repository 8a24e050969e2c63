package domain

// Project is the loaded project configuration.
type Project struct {
	// Root is the absolute project root directory.
	Root string
	// Languages is the ordered list of project locales. The first one is the implicit default.
	Languages []string
	// CacheDir is the absolute directory holding fingerprint records.
	CacheDir string
	// Parallelism bounds concurrent renders and node builds.
	Parallelism int
	// Nodes lists the configured nodes in a deterministic order.
	Nodes []NodeConfig
}

// NodeConfig declares the techs configured for one node directory.
type NodeConfig struct {
	// Path is the node directory relative to the project root, using forward slashes.
	Path string
	// Techs holds one options set per tech instance.
	Techs []TechOptions
}

// Node returns the configuration of the node at path.
func (p *Project) Node(path string) (NodeConfig, bool) {
	for _, n := range p.Nodes {
		if n.Path == path {
			return n, true
		}
	}
	return NodeConfig{}, false
}
