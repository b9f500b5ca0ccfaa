package hcl_adapter

// fileRoot is the decoding target for a whole configuration file. Unknown
// attributes and blocks are rejected by gohcl.
type fileRoot struct {
	Input     string        `hcl:"input,optional"`
	LogLevel  string        `hcl:"log_level,optional"`
	LogFormat string        `hcl:"log_format,optional"`
	Labels    *labelsConfig `hcl:"labels,block"`
}

type labelsConfig struct {
	Root   string `hcl:"root,optional"`
	Source string `hcl:"source,optional"`
	Target string `hcl:"target,optional"`
}
