package config

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"git.home.luguber.info/inful/sitecore/internal/errors"
	"git.home.luguber.info/inful/sitecore/internal/integration"
)

// Keys of a by-name integration entry.
const (
	entryKeyName    = "name"
	entryKeyOptions = "options"
)

// integrations flattens the integrations list and turns every entry into a descriptor.
// Nested lists are flattened in place; nil and false entries are conditional
// activations that evaluated to "off" and are skipped.
func (n *normalizer) integrations(v any) ([]integration.Descriptor, error) {
	if v == nil {
		return nil, nil
	}
	var out []integration.Descriptor
	if err := n.collect(KeyIntegrations, v, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (n *normalizer) collect(field string, v any, out *[]integration.Descriptor, top bool) error {
	switch entry := v.(type) {
	case nil:
		return nil
	case bool:
		if !entry {
			return nil
		}
		return errors.InvalidValue(field, "true is not an integration")
	case integration.Descriptor:
		*out = append(*out, entry.Clone())
		return nil
	case *integration.Descriptor:
		if entry == nil {
			return nil
		}
		*out = append(*out, entry.Clone())
		return nil
	case string:
		return n.resolve(field, strings.TrimSpace(entry), nil, out)
	case map[string]any:
		return n.resolveEntry(field, entry, out)
	case RawConfig:
		return n.resolveEntry(field, entry, out)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			if err := n.collect(fmt.Sprintf("%s[%d]", field, i), rv.Index(i).Interface(), out, false); err != nil {
				return err
			}
		}
		return nil
	}
	if top {
		return errors.InvalidValue(field, fmt.Sprintf("expected a list, got %T", v))
	}
	return errors.InvalidValue(field, fmt.Sprintf("unsupported integration entry of type %T", v))
}

// resolveEntry handles the {name: ..., options: {...}} form.
func (n *normalizer) resolveEntry(field string, entry map[string]any, out *[]integration.Descriptor) error {
	name, ok := entry[entryKeyName].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return errors.MissingRequiredField(field + "." + entryKeyName)
	}
	for k := range entry {
		if k != entryKeyName && k != entryKeyOptions {
			return errors.InvalidValue(field+"."+k, "unexpected key in integration entry (use options)")
		}
	}
	var options map[string]any
	if raw, present := entry[entryKeyOptions]; present && raw != nil {
		m, ok := asMap(raw)
		if !ok {
			return errors.InvalidValue(field+"."+entryKeyOptions, fmt.Sprintf("expected a mapping, got %T", raw))
		}
		options = m
	}
	return n.resolve(field, strings.TrimSpace(name), options, out)
}

func (n *normalizer) resolve(field, name string, options map[string]any, out *[]integration.Descriptor) error {
	if name == "" {
		return errors.MissingRequiredField(field)
	}
	if n.resolver == nil {
		return errors.InvalidValue(field, fmt.Sprintf("integration %q is referenced by name but no resolver is configured", name))
	}
	d, err := n.resolver.Resolve(name, options)
	if err != nil {
		if stdErrors.Is(err, integration.ErrNotFound) {
			return errors.UnknownIntegration(field, name)
		}
		return errors.IntegrationSetupFailed(field, name, err)
	}
	*out = append(*out, d.Clone())
	return nil
}
