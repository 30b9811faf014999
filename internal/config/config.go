package config

// Config represents the full application configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Git    GitConfig    `yaml:"git"`
	Store  StoreConfig  `yaml:"store"`
}

// InputConfig controls how diff text is read and decoded.
type InputConfig struct {
	// Encoding is the IANA charset name used to decode diff files.
	// Empty means the input is already UTF-8.
	Encoding string `yaml:"encoding"`
}

// OutputConfig controls how parse results are rendered.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "markdown"
	Color  string `yaml:"color"`  // "auto", "always", or "never"
}

// GitConfig configures the git diff source.
type GitConfig struct {
	RepositoryDir string `yaml:"repositoryDir"`
	BaseRef       string `yaml:"baseRef"`
}

// StoreConfig configures the parse-run history store.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}
