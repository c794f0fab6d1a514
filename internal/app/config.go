package app

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the source and output paths for a build.
type Config struct {
	ModulePath     string `yaml:"module"`     // primary module body
	ExportsPath    string `yaml:"exports"`    // region-extracted export functions
	ExtensionsPath string `yaml:"extensions"` // appended in full if present
	OutputPath     string `yaml:"out"`
}

// DefaultConfig returns the paths the original deployment used.
func DefaultConfig() Config {
	return Config{
		ModulePath:     "1c_processing/Module/Module.bsl",
		ExportsPath:    "1c_export_functions.txt",
		ExtensionsPath: "1c_module_extensions.bsl",
		OutputPath:     "1c_processing_export.xml",
	}
}

// Load overlays a YAML config file onto the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
