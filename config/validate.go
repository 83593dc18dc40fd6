package config

import (
	"github.com/Masterminds/semver/v3"
	"github.com/teranos/declgen/errors"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Feed.Path == "" {
		return errors.New("feed.path cannot be empty")
	}
	if c.Feed.SchemaConstraint != "" {
		if _, err := semver.NewConstraint(c.Feed.SchemaConstraint); err != nil {
			return errors.Wrapf(err, "feed.schema_constraint %q is not a valid semver constraint", c.Feed.SchemaConstraint)
		}
	}
	for i, alias := range c.Feed.NamespaceAliases {
		if alias.From == "" || alias.To == "" {
			return errors.Newf("feed.namespace_aliases[%d] needs both from and to", i)
		}
	}

	if c.Output.Dir == "" {
		return errors.New("output.dir cannot be empty")
	}
	if c.Output.Workers <= 0 {
		return errors.Newf("output.workers must be > 0, got %d", c.Output.Workers)
	}

	if c.Generator.RootNamespace == "" {
		return errors.New("generator.root_namespace cannot be empty")
	}
	if c.Generator.CacheSize <= 0 {
		return errors.Newf("generator.cache_size must be > 0, got %d", c.Generator.CacheSize)
	}

	switch c.Correction.Mode {
	case ModeNormal, ModeProgressive:
	default:
		return errors.WithHintf(
			errors.Newf("correction.mode %q is not supported", c.Correction.Mode),
			"use %q or %q", ModeNormal, ModeProgressive)
	}
	return nil
}
