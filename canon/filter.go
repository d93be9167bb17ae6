package canon

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/xmldiffs/xmldiffs/debug"
	"github.com/xmldiffs/xmldiffs/ir"
)

type filter struct {
	src string
	prg *vm.Program
}

func compileFilter(rule string) (*filter, error) {
	prg, err := expr.Compile(rule, expr.Env(filterEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: bad ignore rule %q: %v", ErrConfig, rule, err)
	}
	return &filter{src: rule, prg: prg}, nil
}

type filterEnv map[string]any

// ignored evaluates the ignore rules against a raw element before it is
// canonicalized.  parentPath is the canonical path of its parent.
func (c *canonicalizer) ignored(raw *ir.Node, scope *nsScope, parentPath string) (bool, error) {
	if len(c.filters) == 0 {
		return false, nil
	}
	scope = scope.push(raw.Attrs)
	name := c.resolveElem(raw.Name, scope)
	attrs := make(map[string]string)
	for _, a := range raw.Attrs {
		if isNSDecl(a.Name) {
			continue
		}
		attrs[a.Name.Local] = a.Value
	}
	env := filterEnv{
		"name":  name.Local,
		"space": name.Space,
		"path":  parentPath + "/" + name.Local,
		"attr":  attrs,
	}
	for _, f := range c.filters {
		out, err := expr.Run(f.prg, env)
		if err != nil {
			return false, fmt.Errorf("%w: ignore rule %q: %v", ErrConfig, f.src, err)
		}
		if out.(bool) {
			if debug.Canon() {
				debug.Logf("canon: rule %q drops %s\n", f.src, env["path"])
			}
			return true, nil
		}
	}
	return false, nil
}
