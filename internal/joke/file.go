package joke

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FileJoke is one entry of a YAML joke file
type FileJoke struct {
	Setup     string `yaml:"setup"`
	Punchline string `yaml:"punchline"`
	Category  string `yaml:"category"`
}

// File is the YAML document accepted by ImportFile:
//
//	jokes:
//	  - setup: Why did the scarecrow win an award?
//	    punchline: Because he was outstanding in his field
//	    category: pun
type File struct {
	Jokes []FileJoke `yaml:"jokes"`
}

// ParseFile decodes a YAML joke file
func ParseFile(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrContextDecodeJokes, err)
	}
	return &f, nil
}
