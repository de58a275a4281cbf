package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/logforge/logforge/appender"
	"github.com/logforge/logforge/core"
)

// fileAppender is the YAML shape of one appender entry. Deliver
// functions cannot live in a file, so entries name a built-in type
// instead.
type fileAppender struct {
	Type              string `yaml:"type"` // "console" or "file"
	Enabled           *bool  `yaml:"enabled"`
	MinLevel          string `yaml:"minLevel"`
	Async             bool   `yaml:"async"`
	RateLimitWindowMs int    `yaml:"rateLimitWindowMs"`
	Path              string `yaml:"path"` // file type only
}

type fileConfig struct {
	CurrentLevel         string                  `yaml:"currentLevel"`
	NamespaceWhitelist   []string                `yaml:"namespaceWhitelist"`
	NamespaceBlacklist   []string                `yaml:"namespaceBlacklist"`
	TimestampPattern     string                  `yaml:"timestampPattern"`
	TimestampLocale      string                  `yaml:"timestampLocale"`
	SharedAppenderConfig map[string]any          `yaml:"sharedAppenderConfig"`
	Appenders            map[string]fileAppender `yaml:"appenders"`
}

// Load parses a YAML configuration document into a Partial suitable
// for Store.Merge.
func Load(r io.Reader) (Partial, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return Partial{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	return fc.toPartial()
}

// LoadFile reads and parses the named YAML configuration file.
func LoadFile(path string) (Partial, error) {
	f, err := os.Open(path)
	if err != nil {
		return Partial{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func (fc fileConfig) toPartial() (Partial, error) {
	var p Partial

	if fc.CurrentLevel != "" {
		lvl, err := core.ParseLevel(fc.CurrentLevel)
		if err != nil {
			return Partial{}, err
		}
		p.Level = &lvl
	}
	p.NamespaceWhitelist = fc.NamespaceWhitelist
	p.NamespaceBlacklist = fc.NamespaceBlacklist
	if fc.TimestampPattern != "" {
		p.TimestampPattern = &fc.TimestampPattern
	}
	if fc.TimestampLocale != "" {
		p.TimestampLocale = &fc.TimestampLocale
	}
	p.SharedAppenderConfig = fc.SharedAppenderConfig

	for id, fa := range fc.Appenders {
		spec, err := fa.toSpec(id)
		if err != nil {
			return Partial{}, err
		}
		if p.Appenders == nil {
			p.Appenders = make(map[string]appender.Spec, len(fc.Appenders))
		}
		p.Appenders[id] = spec
	}
	return p, nil
}

func (fa fileAppender) toSpec(id string) (appender.Spec, error) {
	spec := appender.Spec{
		ID:              id,
		Enabled:         fa.Enabled == nil || *fa.Enabled,
		Async:           fa.Async,
		RateLimitWindow: time.Duration(fa.RateLimitWindowMs) * time.Millisecond,
	}
	if fa.MinLevel != "" {
		lvl, err := core.ParseLevel(fa.MinLevel)
		if err != nil {
			return appender.Spec{}, err
		}
		spec.MinLevel = lvl
	}

	switch fa.Type {
	case "console", "":
		spec.Deliver = appender.Console(nil)
	case "file":
		if fa.Path == "" {
			return appender.Spec{}, fmt.Errorf("config: appender %q: file type requires a path", id)
		}
		// The handle lives for the process lifetime, like the
		// appender itself; the closer is intentionally dropped.
		deliver, _, err := appender.File(fa.Path)
		if err != nil {
			return appender.Spec{}, err
		}
		spec.Deliver = deliver
	default:
		return appender.Spec{}, fmt.Errorf("config: appender %q: unknown type %q", id, fa.Type)
	}
	return spec, nil
}
