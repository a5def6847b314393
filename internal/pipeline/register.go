// Package pipeline turns activated integrations into an ordered set of hook bindings
// and runs them for a build driver.
package pipeline

import (
	"fmt"

	"git.home.luguber.info/inful/sitecore/internal/errors"
	"git.home.luguber.info/inful/sitecore/internal/integration"
)

// Binding pairs one hook implementation with the integration that declared it.
type Binding struct {
	Integration string
	Hook        integration.HookName
	Fn          integration.HookFunc
}

// ActivePipeline is the ordered, validated set of hook bindings for a site. Bindings are
// ordered by integration registration order, then by hook category order within one
// integration. An ActivePipeline never changes after Register returns.
type ActivePipeline struct {
	bindings     []Binding
	integrations []string
	byHook       map[integration.HookName][]Binding
}

// Register validates descriptors and builds the pipeline. It fails as a whole on the first
// violation, in declaration order: a missing name, a name already taken by an earlier
// descriptor, a hook outside the vocabulary, or a hook without an implementation.
// No hook is invoked.
func Register(descriptors []integration.Descriptor) (*ActivePipeline, error) {
	p := &ActivePipeline{
		integrations: make([]string, 0, len(descriptors)),
		byHook:       make(map[integration.HookName][]Binding),
	}
	seen := make(map[string]int, len(descriptors))

	for i, d := range descriptors {
		if d.Name == "" {
			return nil, errors.MissingRequiredField(fmt.Sprintf("integrations[%d].name", i))
		}
		if first, dup := seen[d.Name]; dup {
			return nil, errors.DuplicateIntegration(d.Name, first, i)
		}
		seen[d.Name] = i

		for _, h := range d.HookNames() {
			if !h.IsValid() {
				return nil, errors.UnknownHook(d.Name, string(h))
			}
			fn := d.Hooks[h]
			if fn == nil {
				return nil, errors.InvalidHook(d.Name, string(h), "hook has no implementation")
			}
			b := Binding{Integration: d.Name, Hook: h, Fn: fn}
			p.bindings = append(p.bindings, b)
			p.byHook[h] = append(p.byHook[h], b)
		}
		p.integrations = append(p.integrations, d.Name)
	}
	return p, nil
}

// Bindings returns all bindings in pipeline order.
func (p *ActivePipeline) Bindings() []Binding {
	out := make([]Binding, len(p.bindings))
	copy(out, p.bindings)
	return out
}

// For returns the bindings of one hook category in integration registration order.
func (p *ActivePipeline) For(h integration.HookName) []Binding {
	src := p.byHook[h]
	out := make([]Binding, len(src))
	copy(out, src)
	return out
}

// Has reports whether any integration implements h.
func (p *ActivePipeline) Has(h integration.HookName) bool {
	return len(p.byHook[h]) > 0
}

// Len returns the number of bindings.
func (p *ActivePipeline) Len() int { return len(p.bindings) }

// Integrations returns the registered integration names in registration order.
func (p *ActivePipeline) Integrations() []string {
	out := make([]string, len(p.integrations))
	copy(out, p.integrations)
	return out
}
