package pipeline

import "fmt"

// Source feeds artifacts to a downstream stage. Consumers pull with the
// HasNext/Next pair; a stage is free to stop pulling before the source is
// exhausted, and whatever remains is simply never read.
type Source interface {
	// HasNext reports whether at least one more artifact is available.
	HasNext() bool

	// Next returns the next artifact and advances the source.
	Next() (Artifact, error)
}

// SliceSource is a materialized source backed by a slice. It is the
// standard way for hosts and tests to hand a fixed set of artifacts to a
// stage.
type SliceSource struct {
	artifacts    []Artifact
	currentIndex int
}

// NewSliceSource creates a source over the given artifacts, ready to use.
func NewSliceSource(artifacts ...Artifact) *SliceSource {
	return &SliceSource{artifacts: artifacts}
}

// HasNext reports whether at least one more artifact remains.
func (s *SliceSource) HasNext() bool {
	return s.currentIndex < len(s.artifacts)
}

// Next returns the next artifact and advances the position.
func (s *SliceSource) Next() (Artifact, error) {
	if s.currentIndex >= len(s.artifacts) {
		return nil, fmt.Errorf("no more artifacts in source")
	}
	artifact := s.artifacts[s.currentIndex]
	s.currentIndex++
	return artifact, nil
}

// Remaining returns the number of artifacts left to consume.
func (s *SliceSource) Remaining() int {
	if s.currentIndex >= len(s.artifacts) {
		return 0
	}
	return len(s.artifacts) - s.currentIndex
}
