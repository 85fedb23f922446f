package ranking

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// State is a participant that both votes and receives votes.
type State struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// Vote is a number of audience votes cast in one state for another.
type Vote struct {
	From  int `yaml:"from"`
	To    int `yaml:"to"`
	Count int `yaml:"count"`
}

// Contest is the input to scoring.
type Contest struct {
	Name   string  `yaml:"name"`
	States []State `yaml:"states"`
	Votes  []Vote  `yaml:"votes"`
}

// Parse decodes a contest from YAML.
func Parse(data []byte) (*Contest, error) {
	var c Contest
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "parse contest")
	}
	return &c, nil
}

// Load reads and decodes the contest file at path.
func Load(path string) (*Contest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read contest file %q", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "contest file %q", path)
	}
	return c, nil
}
