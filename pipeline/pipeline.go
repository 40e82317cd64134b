// Package pipeline parses and runs textual node set chains such as
//
//	#x | children | filter .t
//
// Each stage names a node set operation and an optional selector argument.
// A first stage that does not start with an operation name is a selector.
package pipeline

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/heathj/nodeset/dom"
	"github.com/heathj/nodeset/nodeset"
)

type Op string

const (
	OpSelect   Op = "select"
	OpFind     Op = "find"
	OpChildren Op = "children"
	OpParent   Op = "parent"
	OpClosest  Op = "closest"
	OpFilter   Op = "filter"
	OpUnique   Op = "unique"
	OpFirst    Op = "first"
)

type argRule int

const (
	noArg argRule = iota
	optionalArg
	requiredArg
)

var ops = map[Op]argRule{
	OpSelect:   requiredArg,
	OpFind:     optionalArg,
	OpChildren: optionalArg,
	OpParent:   noArg,
	OpClosest:  requiredArg,
	OpFilter:   optionalArg,
	OpUnique:   noArg,
	OpFirst:    noArg,
}

// ErrSyntax is wrapped by every Parse error.
var ErrSyntax = errors.New("pipeline syntax error")

// Step is one stage of a pipeline.
type Step struct {
	Op  Op
	Arg string
}

func (s Step) String() string {
	if s.Arg == "" {
		return string(s.Op)
	}
	return string(s.Op) + " " + s.Arg
}

// Parse splits expr on "|" outside brackets, parentheses and quotes.
func Parse(expr string) ([]Step, error) {
	stages := split(expr)
	steps := make([]Step, 0, len(stages))
	for i, stage := range stages {
		stage = strings.TrimSpace(stage)
		if stage == "" {
			return nil, errors.Wrapf(ErrSyntax, "stage %d is empty", i+1)
		}
		name, arg := stage, ""
		if idx := strings.IndexAny(stage, " \t"); idx >= 0 {
			name, arg = stage[:idx], strings.TrimSpace(stage[idx+1:])
		}
		rule, known := ops[Op(name)]
		if !known {
			if i == 0 {
				steps = append(steps, Step{Op: OpSelect, Arg: stage})
				continue
			}
			return nil, errors.Wrapf(ErrSyntax, "stage %d: unknown operation %q", i+1, name)
		}
		switch {
		case rule == noArg && arg != "":
			return nil, errors.Wrapf(ErrSyntax, "stage %d: %s takes no argument", i+1, name)
		case rule == requiredArg && arg == "":
			return nil, errors.Wrapf(ErrSyntax, "stage %d: %s needs a selector", i+1, name)
		}
		steps = append(steps, Step{Op: Op(name), Arg: arg})
	}
	return steps, nil
}

func split(expr string) []string {
	var (
		stages []string
		depth  int
		quote  rune
		start  int
	)
	for i, r := range expr {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '[' || r == '(':
			depth++
		case r == ']' || r == ')':
			if depth > 0 {
				depth--
			}
		case r == '|' && depth == 0:
			stages = append(stages, expr[start:i])
			start = i + 1
		}
	}
	return append(stages, expr[start:])
}

// Run applies steps in order, starting from an empty set on doc.
func Run(doc *dom.Document, steps []Step) (nodeset.Set, error) {
	set := nodeset.FromNodes(doc, nil)
	for i, step := range steps {
		var err error
		switch step.Op {
		case OpSelect:
			set, err = nodeset.Select(doc, step.Arg)
		case OpFind:
			set, err = set.Find(step.Arg)
		case OpChildren:
			set, err = set.Children(step.Arg)
		case OpParent:
			set = set.Parent()
		case OpClosest:
			set, err = set.Closest(step.Arg)
		case OpFilter:
			set, err = set.FilterSelector(step.Arg)
		case OpUnique:
			set = set.Unique()
		case OpFirst:
			set = nodeset.FromNode(doc, set.First())
		default:
			err = errors.Errorf("unknown operation %q", step.Op)
		}
		if err != nil {
			return set, errors.Wrapf(err, "step %d (%s)", i+1, step)
		}
	}
	return set, nil
}

// Eval parses expr and runs it.
func Eval(doc *dom.Document, expr string) (nodeset.Set, error) {
	steps, err := Parse(expr)
	if err != nil {
		return nodeset.Set{}, err
	}
	return Run(doc, steps)
}
