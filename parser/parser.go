package parser

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

type parserConfig struct {
	scriptingEnabled bool
}

// Option changes how a Parser builds its tree.
type Option func(*parserConfig)

// WithScripting toggles the scripting flag, which decides how <noscript> content is parsed.
func WithScripting(enabled bool) Option {
	return func(c *parserConfig) {
		c.scriptingEnabled = enabled
	}
}

// Parser turns an HTML byte stream into a document tree.
type Parser struct {
	input  io.Reader
	config parserConfig
}

func NewParser(htmlIn io.Reader, opts ...Option) *Parser {
	p := &Parser{
		input:  htmlIn,
		config: parserConfig{scriptingEnabled: true},
	}
	for _, opt := range opts {
		opt(&p.config)
	}
	return p
}

// Start parses the whole input and returns the document node.
func (p *Parser) Start() (*html.Node, error) {
	var opts []html.ParseOption
	if !p.config.scriptingEnabled {
		opts = append(opts, html.ParseOptionEnableScripting(false))
	}
	root, err := html.ParseWithOptions(p.input, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "parsing html document")
	}
	return root, nil
}
