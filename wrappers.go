package e2ekit

import (
	"context"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

//go:generate mockgen -destination=wrappers_mocks_test.go -package=e2ekit -source wrappers.go

// pager is the subset of rod.Page used by the page objects.  It is used for
// mocking rod.Page in tests.
type pager interface {
	Navigate(ctx context.Context, url string) error
	WaitLoad(ctx context.Context) error
	// Element waits until an element matching selector appears.
	Element(ctx context.Context, selector string) (elementer, error)
	// Elements returns all elements matching selector, without waiting.
	Elements(ctx context.Context, selector string) ([]elementer, error)
}

// elementer is the subset of rod.Element used by the page objects.
type elementer interface {
	Click(ctx context.Context) error
	Input(ctx context.Context, text string) error
	Clear(ctx context.Context) error
	Hover(ctx context.Context) error
	Text(ctx context.Context) (string, error)
	Attribute(ctx context.Context, name string) (string, error)
	Visible(ctx context.Context) (bool, error)
	WaitVisible(ctx context.Context) error
	WaitInvisible(ctx context.Context) error
	WaitEnabled(ctx context.Context) error
	Element(ctx context.Context, selector string) (elementer, error)
	Elements(ctx context.Context, selector string) ([]elementer, error)
}

type (
	pageWrapper    rod.Page
	elementWrapper rod.Element
)

func (p *pageWrapper) pg(ctx context.Context) *rod.Page {
	return (*rod.Page)(p).Context(ctx)
}

func (p *pageWrapper) Navigate(ctx context.Context, url string) error {
	return p.pg(ctx).Navigate(url)
}

func (p *pageWrapper) WaitLoad(ctx context.Context) error {
	return p.pg(ctx).WaitLoad()
}

func (p *pageWrapper) Element(ctx context.Context, selector string) (elementer, error) {
	el, err := p.pg(ctx).Element(selector)
	if err != nil {
		return nil, err
	}
	return (*elementWrapper)(el), nil
}

func (p *pageWrapper) Elements(ctx context.Context, selector string) ([]elementer, error) {
	els, err := p.pg(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

func (e *elementWrapper) el(ctx context.Context) *rod.Element {
	return (*rod.Element)(e).Context(ctx)
}

func (e *elementWrapper) Click(ctx context.Context) error {
	return e.el(ctx).Click(proto.InputMouseButtonLeft, 1)
}

func (e *elementWrapper) Input(ctx context.Context, text string) error {
	return e.el(ctx).Input(text)
}

// Clear selects the field content and deletes it.
func (e *elementWrapper) Clear(ctx context.Context) error {
	el := e.el(ctx)
	if err := el.SelectAllText(); err != nil {
		return err
	}
	return el.Type(input.Backspace)
}

func (e *elementWrapper) Hover(ctx context.Context) error {
	return e.el(ctx).Hover()
}

func (e *elementWrapper) Text(ctx context.Context) (string, error) {
	return e.el(ctx).Text()
}

// Attribute returns the attribute value, or an empty string if the element
// does not have it.
func (e *elementWrapper) Attribute(ctx context.Context, name string) (string, error) {
	v, err := e.el(ctx).Attribute(name)
	if err != nil || v == nil {
		return "", err
	}
	return *v, nil
}

func (e *elementWrapper) Visible(ctx context.Context) (bool, error) {
	return e.el(ctx).Visible()
}

func (e *elementWrapper) WaitVisible(ctx context.Context) error {
	return e.el(ctx).WaitVisible()
}

func (e *elementWrapper) WaitInvisible(ctx context.Context) error {
	return e.el(ctx).WaitInvisible()
}

func (e *elementWrapper) WaitEnabled(ctx context.Context) error {
	return e.el(ctx).WaitEnabled()
}

func (e *elementWrapper) Element(ctx context.Context, selector string) (elementer, error) {
	el, err := e.el(ctx).Element(selector)
	if err != nil {
		return nil, err
	}
	return (*elementWrapper)(el), nil
}

func (e *elementWrapper) Elements(ctx context.Context, selector string) ([]elementer, error) {
	els, err := e.el(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

func wrapElements(els rod.Elements) []elementer {
	out := make([]elementer, 0, len(els))
	for _, el := range els {
		out = append(out, (*elementWrapper)(el))
	}
	return out
}
