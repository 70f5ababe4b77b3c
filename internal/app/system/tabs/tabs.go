// Package tabs models the section navigator on the topic page.
//
// A Navigator is a four-state machine. It starts at Overview and moves to any
// section on an explicit Activate; nothing changes it otherwise.
package tabs

import (
	"errors"
	"fmt"
)

// Section identifies one of the topic page panels.
type Section string

const (
	Overview  Section = "overview"
	Examples  Section = "examples"
	Exercises Section = "exercises"
	Summary   Section = "summary"
)

// Sections lists every section in display order.
var Sections = []Section{Overview, Examples, Exercises, Summary}

// ErrUnknownSection is returned for identifiers outside Sections.
var ErrUnknownSection = errors.New("unknown section")

// Parse converts an identifier into a Section.
func Parse(id string) (Section, error) {
	for _, s := range Sections {
		if string(s) == id {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, id)
}

// Label is the tab caption.
func (s Section) Label() string {
	switch s {
	case Overview:
		return "Overview"
	case Examples:
		return "Examples"
	case Exercises:
		return "Exercises"
	case Summary:
		return "Summary"
	}
	return string(s)
}

// Navigator tracks the active section. It is not safe for concurrent use;
// callers that share one guard it themselves.
type Navigator struct {
	current Section
}

// New returns a Navigator positioned at Overview.
func New() *Navigator {
	return &Navigator{current: Overview}
}

// Activate switches to the section named id. An unknown id is rejected and
// the active section is left unchanged.
func (n *Navigator) Activate(id string) error {
	s, err := Parse(id)
	if err != nil {
		return err
	}
	n.current = s
	return nil
}

// Current returns the active section.
func (n *Navigator) Current() Section {
	return n.current
}
