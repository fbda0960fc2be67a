package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	tkerrors "github.com/alexisbeaulieu97/tokenkit/pkg/errors"
)

//go:embed showcase.yaml
var defaultShowcase []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a showcase document from disk, validates it, and returns
// the resulting model. An empty path selects the built-in document.
func ParseConfig(path string) (*Config, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tkerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Default returns the built-in showcase document.
func Default() (*Config, error) {
	return Parse("showcase.yaml", defaultShowcase)
}

// Parse decodes and validates a showcase document. name is used in errors.
func Parse(name string, data []byte) (*Config, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, tkerrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
