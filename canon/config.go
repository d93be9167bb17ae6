package canon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfig wraps every configuration problem.  Configuration is
// rejected before any canonicalization or diffing takes place.
var ErrConfig = errors.New("configuration error")

type Config struct {
	// PreserveWhitespaceIn lists element local names under which text
	// is kept verbatim instead of being whitespace-normalized.
	PreserveWhitespaceIn []string `json:"preserveWhitespaceIn,omitempty"`

	// IgnoreNamespaces treats all namespace URIs as equal.
	IgnoreNamespaces bool `json:"ignoreNamespaces,omitempty"`

	// Ignore holds expr predicates; elements matching any of them are
	// excluded from the canonical tree.  The environment exposes
	// name, space, path and attr (a map of local attribute names).
	Ignore []string `json:"ignore,omitempty"`
}

func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if err := c.validateNames(); err != nil {
		return err
	}
	_, err := c.compileFilters()
	return err
}

func (c *Config) validateNames() error {
	for _, name := range c.PreserveWhitespaceIn {
		if name == "" || strings.ContainsAny(name, " \t\r\n<>&/") {
			return fmt.Errorf("%w: invalid preserveWhitespaceIn element name %q", ErrConfig, name)
		}
	}
	return nil
}

func (c *Config) compileFilters() ([]*filter, error) {
	res := make([]*filter, 0, len(c.Ignore))
	for _, rule := range c.Ignore {
		f, err := compileFilter(rule)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}
