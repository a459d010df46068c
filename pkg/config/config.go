package config

import (
	"fmt"
	"io"
	"os"

	"github.com/confkit/confkit/internal/conftext"
	"github.com/confkit/confkit/pkg/tree"
	"github.com/confkit/confkit/pkg/types"
)

// Config bundles parsing options. The zero value parses UTF-8 input
// under DefaultLimits; construct one with New only to override either.
type Config struct {
	opts ParseOptions
}

// New creates a Config with the given options.
//
// Example:
//
//	cfg := config.New(config.ParseOptions{
//	    InputEncoding: "UTF-16LE",
//	    Limits:        &strictLimits,
//	})
//	root, err := cfg.ParseFile("broker.cfg")
func New(opts ParseOptions) *Config {
	return &Config{opts: opts}
}

func (c *Config) limits() types.Limits {
	if c == nil || c.opts.Limits == nil {
		return types.DefaultLimits()
	}
	return *c.opts.Limits
}

func (c *Config) encoding() string {
	if c == nil {
		return ""
	}
	return c.opts.InputEncoding
}

// ParseText parses configuration text into a tree wrapped in a synthetic
// root node named "root". On failure no partial tree is returned.
func (c *Config) ParseText(text string) (*tree.Node, error) {
	return conftext.Parse(text, c.limits())
}

// ParseBytes decodes raw bytes per the configured input encoding, then
// parses the resulting text.
func (c *Config) ParseBytes(data []byte) (*tree.Node, error) {
	text, err := conftext.DecodeInput(data, c.encoding())
	if err != nil {
		return nil, err
	}
	return c.ParseText(text)
}

// ParseReader drains an external byte source and parses its content.
// A read failure surfaces as an io-kinded error wrapping the cause.
func (c *Config) ParseReader(r io.Reader) (*tree.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "config: read source", Err: err}
	}
	return c.ParseBytes(data)
}

// ParseFile reads and parses a configuration file.
func (c *Config) ParseFile(path string) (*tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: fmt.Sprintf("config: read %s", path), Err: err}
	}
	return c.ParseBytes(data)
}

// NewTree creates a standalone root node for programmatic construction.
func (c *Config) NewTree(name string) (*tree.Node, error) {
	return tree.New(name)
}

// Save serializes a tree to configuration text on w. The children of
// root are emitted at indentation zero; the root itself produces no line.
func (c *Config) Save(w io.Writer, root *tree.Node, opts SaveOptions) error {
	if _, err := w.Write(conftext.Emit(root, opts)); err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "config: write output", Err: err}
	}
	return nil
}

// SaveFile serializes a tree to a configuration file.
func (c *Config) SaveFile(path string, root *tree.Node, opts SaveOptions) error {
	if err := os.WriteFile(path, conftext.Emit(root, opts), 0o644); err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: fmt.Sprintf("config: write %s", path), Err: err}
	}
	return nil
}

var defaultConfig = &Config{}

// ParseText parses configuration text with default options.
func ParseText(text string) (*tree.Node, error) {
	return defaultConfig.ParseText(text)
}

// ParseBytes parses raw configuration bytes with default options.
func ParseBytes(data []byte) (*tree.Node, error) {
	return defaultConfig.ParseBytes(data)
}

// ParseReader parses an external byte source with default options.
func ParseReader(r io.Reader) (*tree.Node, error) {
	return defaultConfig.ParseReader(r)
}

// ParseFile reads and parses a configuration file with default options.
func ParseFile(path string) (*tree.Node, error) {
	return defaultConfig.ParseFile(path)
}

// NewTree creates a standalone root node for programmatic construction.
func NewTree(name string) (*tree.Node, error) {
	return tree.New(name)
}

// Save serializes a tree to configuration text on w.
func Save(w io.Writer, root *tree.Node) error {
	return defaultConfig.Save(w, root, SaveOptions{})
}
