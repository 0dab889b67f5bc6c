package pipeline

import (
	"gopivot/pkg/grouping"
	"gopivot/pkg/table"
)

// Kind tags the artifacts that travel between pipeline stages.
type Kind int

const (
	// KindTable is a plain table artifact, e.g. a pivot result.
	KindTable Kind = iota

	// KindGroupedTable is a table with an attached grouping structure,
	// produced by a groupby stage.
	KindGroupedTable
)

// String returns the artifact kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindGroupedTable:
		return "grouped table"
	default:
		return "unknown"
	}
}

// Artifact is a value handed from one pipeline stage to the next. Stages
// type-switch on concrete artifact types after checking the kind tag.
type Artifact interface {
	Kind() Kind
}

// TableArtifact wraps a plain table.
type TableArtifact struct {
	Table *table.Table
}

func (a *TableArtifact) Kind() Kind {
	return KindTable
}

// GroupedTableArtifact wraps a grouped table produced by an upstream
// grouping stage.
type GroupedTableArtifact struct {
	Grouped *grouping.GroupedTable
}

func (a *GroupedTableArtifact) Kind() Kind {
	return KindGroupedTable
}
