// Package config loads declgen settings from TOML files, DECLGEN_* environment
// variables and an optional .env file.
package config

// Config is the complete declgen configuration.
type Config struct {
	Feed       FeedConfig       `mapstructure:"feed" toml:"feed" json:"feed" yaml:"feed"`
	Output     OutputConfig     `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Generator  GeneratorConfig  `mapstructure:"generator" toml:"generator" json:"generator" yaml:"generator"`
	Correction CorrectionConfig `mapstructure:"correction" toml:"correction" json:"correction" yaml:"correction"`
	Log        LogConfig        `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// FeedConfig locates and checks the metadata feed.
type FeedConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" yaml:"path"`
	// SchemaConstraint is a semver constraint the feed's version must satisfy.
	// Empty disables the check.
	SchemaConstraint string           `mapstructure:"schema_constraint" toml:"schema_constraint" json:"schema_constraint" yaml:"schema_constraint"`
	NamespaceAliases []NamespaceAlias `mapstructure:"namespace_aliases" toml:"namespace_aliases" json:"namespace_aliases" yaml:"namespace_aliases"`
}

// NamespaceAlias rewrites a legacy namespace spelling before decoding.
type NamespaceAlias struct {
	From string `mapstructure:"from" toml:"from" json:"from" yaml:"from"`
	To   string `mapstructure:"to" toml:"to" json:"to" yaml:"to"`
}

// OutputConfig controls where and how files are written.
type OutputConfig struct {
	Dir     string `mapstructure:"dir" toml:"dir" json:"dir" yaml:"dir"`
	Clean   bool   `mapstructure:"clean" toml:"clean" json:"clean" yaml:"clean"`
	Workers int    `mapstructure:"workers" toml:"workers" json:"workers" yaml:"workers"`
	// Raw skips the text post-processor.
	Raw bool `mapstructure:"raw" toml:"raw" json:"raw" yaml:"raw"`
}

// GeneratorConfig shapes the emitted declarations.
type GeneratorConfig struct {
	RootNamespace   string   `mapstructure:"root_namespace" toml:"root_namespace" json:"root_namespace" yaml:"root_namespace"`
	Module          string   `mapstructure:"module" toml:"module" json:"module" yaml:"module"`
	Descriptions    string   `mapstructure:"descriptions" toml:"descriptions" json:"descriptions" yaml:"descriptions"`
	StandardImports []string `mapstructure:"standard_imports" toml:"standard_imports" json:"standard_imports" yaml:"standard_imports"`
	PrimitiveTypes  []string `mapstructure:"primitive_types" toml:"primitive_types" json:"primitive_types" yaml:"primitive_types"`
	MarkerTypes     []string `mapstructure:"marker_types" toml:"marker_types" json:"marker_types" yaml:"marker_types"`
	CacheSize       int      `mapstructure:"cache_size" toml:"cache_size" json:"cache_size" yaml:"cache_size"`
}

// CorrectionConfig tunes the correction engine.
type CorrectionConfig struct {
	// Mode is "normal" or "progressive".
	Mode string `mapstructure:"mode" toml:"mode" json:"mode" yaml:"mode"`
	// StrictNumbers makes unresolved numeric parameters fatal instead of
	// falling back to Double.
	StrictNumbers bool `mapstructure:"strict_numbers" toml:"strict_numbers" json:"strict_numbers" yaml:"strict_numbers"`
}

// LogConfig controls log output.
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" yaml:"theme"`
}

// Correction modes
const (
	ModeNormal      = "normal"
	ModeProgressive = "progressive"
)
