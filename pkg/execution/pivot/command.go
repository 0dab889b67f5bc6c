package pivot

import (
	"fmt"

	"gopivot/pkg/pipeline"
	"gopivot/pkg/primitives"
)

// State tracks a command through its single-consumption protocol. Done and
// Failed are terminal; a command never runs twice.
type State int

const (
	// StateAwaitingInput is the initial state, before the upstream pull.
	StateAwaitingInput State = iota

	// StateValidating means a grouped table was accepted and the resolve /
	// validate / execute sequence is in flight.
	StateValidating

	// StateDone means exactly one output artifact was emitted.
	StateDone

	// StateFailed means the invocation aborted with a terminal error.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting input"
	case StateValidating:
		return "validating"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Command is one pivot invocation: three tagged arguments plus a single
// upstream artifact. It consumes exactly one artifact from its source and
// deliberately never reads a second one, however many remain.
type Command struct {
	pivotCol primitives.Tagged
	valueCol primitives.Tagged
	opName   primitives.Tagged
	span     primitives.Span
	state    State
}

// NewCommand creates a pivot command. The span tags the invocation as a
// whole and is attached to failures that no single argument owns, such as
// a missing upstream artifact.
func NewCommand(span primitives.Span, pivotCol, valueCol, opName primitives.Tagged) *Command {
	return &Command{
		pivotCol: pivotCol,
		valueCol: valueCol,
		opName:   opName,
		span:     span,
		state:    StateAwaitingInput,
	}
}

// State returns the command's current protocol state.
func (c *Command) State() State {
	return c.state
}

// Run pulls one artifact from the source and drives it through the
// resolve -> validate pivot column -> validate value column -> execute
// sequence. Any failure short-circuits to the Failed state with the
// originating error; success emits exactly one table artifact.
//
// Commands are single-use: running a command that already reached a
// terminal state is a caller bug, not a pivot failure.
func (c *Command) Run(src pipeline.Source) (pipeline.Artifact, error) {
	if c.state != StateAwaitingInput {
		return nil, fmt.Errorf("pivot command already ran to state %q", c.state)
	}

	if !src.HasNext() {
		return nil, c.fail(&Error{Kind: ErrMissingInput, Span: c.span})
	}

	artifact, err := src.Next()
	if err != nil {
		return nil, c.fail(&Error{Kind: ErrMissingInput, Span: c.span, Cause: err})
	}

	grouped, ok := artifact.(*pipeline.GroupedTableArtifact)
	if !ok {
		return nil, c.fail(&Error{Kind: ErrUnexpectedInputKind, Name: artifact.Kind().String(), Span: c.span})
	}

	c.state = StateValidating

	op, err := ResolveOperation(c.opName)
	if err != nil {
		return nil, c.fail(err)
	}

	schema := grouped.Grouped.Source()
	if err := CheckPivotColumn(schema, c.pivotCol); err != nil {
		return nil, c.fail(err)
	}
	if err := CheckValueColumn(schema, c.valueCol); err != nil {
		return nil, c.fail(err)
	}

	result, err := Execute(grouped.Grouped, c.pivotCol.Item, c.valueCol.Item, op, c.span)
	if err != nil {
		return nil, c.fail(err)
	}

	c.state = StateDone
	return &pipeline.TableArtifact{Table: result}, nil
}

// fail moves the command to its terminal Failed state and hands the error back.
func (c *Command) fail(err error) error {
	c.state = StateFailed
	return err
}
