package main

import (
	"io"

	"github.com/wbrown/janus-objects/graph/store"
	yaml "gopkg.in/yaml.v2"
)

// Config is the optional YAML configuration for a session
type Config struct {
	Prefixes map[string]string `yaml:"prefixes"`
	Aliases  map[string]string `yaml:"aliases"`
	Language string            `yaml:"language"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, cfg)

	return cfg, err
}

// bindPrefixes registers every configured prefix that the store does not
// already bind
func (c *Config) bindPrefixes(ns *store.Namespaces) error {
	for prefix, uri := range c.Prefixes {
		if _, ok := ns.Lookup(prefix); ok {
			continue
		}
		if err := ns.Bind(prefix, uri); err != nil {
			return err
		}
	}
	return nil
}
