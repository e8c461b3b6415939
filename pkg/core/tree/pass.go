package tree

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layoutc/pkg/solver"
)

// Omission records a child that was left out of its parent's solver node
// because its own submission failed.
type Omission struct {
	Parent Content
	Child  Content
	Err    error
}

// Option configures a RootView or a Pass.
type Option func(*config)

type config struct {
	strict bool
	logger *log.Logger
}

func newConfig(opts []Option) config {
	cfg := config{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithStrictChildren makes a child's submission failure fail its parent
// instead of omitting the child.
func WithStrictChildren() Option {
	return func(c *config) { c.strict = true }
}

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Pass is the context of one submission pass. It carries the solver every
// element submits to and applies the child-omission policy.
type Pass struct {
	solver  solver.Solver
	strict  bool
	logger  *log.Logger
	omitted []Omission
}

// NewPass returns a Pass submitting to s.
func NewPass(s solver.Solver, opts ...Option) *Pass {
	return newPass(s, newConfig(opts))
}

func newPass(s solver.Solver, cfg config) *Pass {
	return &Pass{solver: s, strict: cfg.strict, logger: cfg.logger}
}

// Solver returns the solver this pass submits to.
func (p *Pass) Solver() solver.Solver { return p.solver }

// Omitted returns the children omitted so far, in submission order.
func (p *Pass) Omitted() []Omission { return p.omitted }

// NewNode creates a solver node and, on success, stores its id in identity.
// Every Content implementation ends its Submit with a call to NewNode.
func (p *Pass) NewNode(identity *NodeType, style solver.Style, children []solver.NodeID) (solver.NodeID, error) {
	id, err := p.solver.NewNode(style, children)
	if err != nil {
		return 0, err
	}
	identity.assign(id)
	return id, nil
}

// submitChild submits child on behalf of parent. In tolerant mode a failure
// is recorded and reported as ok=false with a nil error.
func (p *Pass) submitChild(parent, child Content) (id solver.NodeID, ok bool, err error) {
	id, err = child.Submit(p)
	if err == nil {
		return id, true, nil
	}
	if p.strict {
		return 0, false, err
	}

	p.omitted = append(p.omitted, Omission{Parent: parent, Child: child, Err: err})
	p.logger.Debug("omitting child",
		"parent", Describe(parent),
		"child", Describe(child),
		"err", err)
	return 0, false, nil
}

// SubmitChildren submits every child on behalf of parent, in order, and
// returns the ids of those that succeeded. Failures follow the pass's
// omission policy.
func (p *Pass) SubmitChildren(parent Content, children []Content) ([]solver.NodeID, error) {
	ids := make([]solver.NodeID, 0, len(children))
	for _, c := range children {
		id, ok, err := p.submitChild(parent, c)
		if err != nil {
			return nil, err
		}
		if ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
