package tagtree

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hesusruiz/vcutils/yaml"
)

// defaultVoidTags are the tags that never have a closing counterpart.
var defaultVoidTags = []string{
	"!doctype", "area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr",
}

// VoidSet is a set of tag names matched case-insensitively.
type VoidSet map[string]struct{}

// NewVoidSet returns a set with the given tag names.
func NewVoidSet(tags ...string) VoidSet {
	s := make(VoidSet, len(tags))
	for _, t := range tags {
		s.add(t)
	}
	return s
}

func (s VoidSet) add(tag string) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag != "" {
		s[tag] = struct{}{}
	}
}

// Contains reports whether tag is a void tag.
func (s VoidSet) Contains(tag string) bool {
	_, ok := s[strings.ToLower(tag)]
	return ok
}

// Tags returns the sorted tag names in the set.
func (s VoidSet) Tags() []string {
	tags := make([]string, 0, len(s))
	for t := range s {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Config is the effective configuration of a document. Treat it as immutable
// once a document has been built with it.
type Config struct {
	VoidTags       VoidSet
	TrimWhitespace bool
}

// DefaultConfig returns a fresh copy of the default configuration.
func DefaultConfig() Config {
	return Config{
		VoidTags:       NewVoidSet(defaultVoidTags...),
		TrimWhitespace: true,
	}
}

// Options modify a configuration. VoidTags are added to the existing set;
// a nil TrimWhitespace leaves the flag unchanged.
type Options struct {
	VoidTags       []string
	TrimWhitespace *bool
}

// Configure applies opts to the default configuration and returns the result.
func Configure(opts Options) Config {
	return DefaultConfig().With(opts)
}

// With returns a copy of c with opts applied. c itself is not modified.
func (c Config) With(opts Options) Config {
	out := Config{
		VoidTags:       make(VoidSet, len(c.VoidTags)+len(opts.VoidTags)),
		TrimWhitespace: c.TrimWhitespace,
	}
	for t := range c.VoidTags {
		out.VoidTags[t] = struct{}{}
	}
	for _, t := range opts.VoidTags {
		out.VoidTags.add(t)
	}
	if opts.TrimWhitespace != nil {
		out.TrimWhitespace = *opts.TrimWhitespace
	}
	return out
}

// ParseConfigYAML reads options from a YAML document and applies them to the
// default configuration. Recognised keys:
//
//	voidTags: "custom-icon, x-spacer"   # whitespace or comma separated
//	trimWhitespace: false
func ParseConfigYAML(src string) (Config, error) {
	y, err := yaml.ParseYaml(src)
	if err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}

	var opts Options

	tags := y.String("voidTags", "")
	opts.VoidTags = strings.FieldsFunc(tags, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	// Only override the flag when the key is present
	if v, _ := y.Get("trimWhitespace"); v != nil {
		trim := y.Bool("trimWhitespace")
		opts.TrimWhitespace = &trim
	}

	return Configure(opts), nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(fileName string) (Config, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfigYAML(string(src))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", fileName, err)
	}
	return cfg, nil
}
