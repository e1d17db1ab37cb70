package e2ekit

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	selDropdownToggle = `[data-e2e="search-bar-dropdown-toggle"]`
	selDropdownOption = `[data-e2e="search-bar-dropdown-menu"] span`
	selSelectedOption = `[data-e2e="search-bar-dropdown-menu"] .e2e-selected`

	classSelected   = "e2e-selected"
	classDeselected = "e2e-deselected"
)

// ErrSelection indicates that some of the requested values are not options
// of the multi-select widget.
var ErrSelection = errors.New("could not toggle element selection")

// MultiSelect drives a multi-select dropdown widget bound to the control
// matching selector.
type MultiSelect struct {
	name     string
	selector string
	p        pager
	act      *Action
}

func newMultiSelect(p pager, act *Action, name, selector string) *MultiSelect {
	return &MultiSelect{name: name, selector: selector, p: p, act: act}
}

// SelectValues selects the options with the given texts.  All of them must
// be deselected before the call.
func (m *MultiSelect) SelectValues(ctx context.Context, values []string) error {
	return m.toggle(ctx, values, classDeselected)
}

// DeselectValues deselects the options with the given texts.  All of them
// must be selected before the call.
func (m *MultiSelect) DeselectValues(ctx context.Context, values []string) error {
	return m.toggle(ctx, values, classSelected)
}

// ExpectCurrentSelectionToBe checks that the selected options are exactly
// the given values, in any order.
func (m *MultiSelect) ExpectCurrentSelectionToBe(ctx context.Context, values []string) error {
	root, err := m.root(ctx)
	if err != nil {
		return err
	}
	if err := m.toggleDropdown(ctx, root); err != nil {
		return err
	}
	selected, err := root.Elements(ctx, selSelectedOption)
	if err != nil {
		return ErrBrowser{Err: err, FailedTo: "find selected options of " + m.name}
	}
	got, err := texts(ctx, selected)
	if err != nil {
		return ErrBrowser{Err: err, FailedTo: "read selected options of " + m.name}
	}
	if err := m.toggleDropdown(ctx, root); err != nil {
		return err
	}
	if !sameSet(got, values) {
		return ErrExpectation{What: m.name + " selection", Want: values, Got: got}
	}
	return nil
}

func (m *MultiSelect) root(ctx context.Context) (elementer, error) {
	return m.act.w.PresenceOf(ctx, m.p, m.selector, m.name+" to be present")
}

func (m *MultiSelect) toggleDropdown(ctx context.Context, root elementer) error {
	btn, err := m.act.w.PresenceOf(ctx, root, selDropdownToggle, m.name+" dropdown toggle to be present")
	if err != nil {
		return err
	}
	return m.act.Click(ctx, m.name+" dropdown", btn)
}

// toggle opens the dropdown, clicks every option matching values after
// checking it has wantClass, and closes the dropdown.
func (m *MultiSelect) toggle(ctx context.Context, values []string, wantClass string) error {
	root, err := m.root(ctx)
	if err != nil {
		return err
	}
	if err := m.toggleDropdown(ctx, root); err != nil {
		return err
	}
	options, err := root.Elements(ctx, selDropdownOption)
	if err != nil {
		return ErrBrowser{Err: err, FailedTo: "find options of " + m.name}
	}
	labels, err := texts(ctx, options)
	if err != nil {
		return ErrBrowser{Err: err, FailedTo: "read options of " + m.name}
	}

	var found int
	for _, v := range values {
		i := slices.Index(labels, v)
		if i < 0 {
			continue
		}
		found++
		opt := options[i]
		class, err := opt.Attribute(ctx, "class")
		if err != nil {
			return ErrBrowser{Err: err, FailedTo: "read class of option " + v}
		}
		if !hasClass(class, wantClass) {
			return ErrExpectation{What: fmt.Sprintf("class of %s option %q", m.name, v), Want: wantClass, Got: class}
		}
		if err := m.act.Click(ctx, m.name+" option "+v, opt); err != nil {
			return err
		}
	}
	if found != len(values) {
		return fmt.Errorf("%w: values requested: %v, found %d matching elements", ErrSelection, values, found)
	}

	return m.toggleDropdown(ctx, root)
}

// texts returns the trimmed text of each element.
func texts(ctx context.Context, els []elementer) ([]string, error) {
	out := make([]string, 0, len(els))
	for _, el := range els {
		t, err := el.Text(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, strings.TrimSpace(t))
	}
	return out, nil
}

func hasClass(class, name string) bool {
	return slices.Contains(strings.Fields(class), name)
}

// sameSet reports whether a and b hold the same values, ignoring order.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
