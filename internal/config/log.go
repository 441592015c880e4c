package config

// Log selects the zap preset and encoding. File, when set, is written to in
// addition to stderr.
type Log struct {
	Level  string `mapstructure:"level" default:"info"`
	Format string `mapstructure:"format" default:"console"`
	File   string `mapstructure:"file" default:""`
}
