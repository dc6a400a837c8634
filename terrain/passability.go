// SPDX-License-Identifier: MIT

package terrain

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Passability configures which cells block movement.
//
// A cell is impassable when its band is listed in Impassable, or when
// BlockRule is set and evaluates to true for the cell.
type Passability struct {
	Impassable []string `yaml:"impassable" json:"impassable"`
	BlockRule  string   `yaml:"block_rule,omitempty" json:"block_rule,omitempty"`
}

// DefaultPassability blocks the DefaultImpassable bands and sets no rule.
func DefaultPassability() Passability {
	return Passability{Impassable: DefaultImpassable()}
}

// RuleEnv is the environment a BlockRule is evaluated against.
//
// Example rules:
//
//	Terrain == "LAKE" && Raw > 0.4
//	Code >= 8 || Row == 0
type RuleEnv struct {
	Terrain string
	Code    int
	Raw     float64
	Row     int
	Column  int
}

// Judge decides passability for classified cells.
type Judge struct {
	blocked map[string]struct{}
	program *vm.Program
}

// Compile validates p against t and compiles the block rule, if any.
func (p Passability) Compile(t Table) (*Judge, error) {
	j := &Judge{blocked: make(map[string]struct{}, len(p.Impassable))}
	for _, name := range p.Impassable {
		if _, ok := t.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBand, name)
		}
		j.blocked[name] = struct{}{}
	}
	if p.BlockRule != "" {
		prog, err := expr.Compile(p.BlockRule, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRule, err)
		}
		j.program = prog
	}

	return j, nil
}

// Passable reports whether the cell described by env admits movement.
func (j *Judge) Passable(env RuleEnv) (bool, error) {
	if _, ok := j.blocked[env.Terrain]; ok {
		return false, nil
	}
	if j.program == nil {
		return true, nil
	}
	res, err := vm.Run(j.program, env)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBadRule, err)
	}

	return !res.(bool), nil
}
