package nslog

import (
	"maps"
	"slices"
)

// Tags classify a logger context; they are handed to Config.Filter.
type Tags map[string]any

// Extra carries per-event detail. Values are expected to be strings, numbers,
// booleans or nil.
type Extra map[string]any

// Context is the accumulated state of a logger. Sinks receive it read-only;
// every Fork builds a fresh Context so parents are never mutated.
type Context struct {
	Namespace []string
	Tags      Tags
	Extra     Extra
	// Config is shared by pointer between a logger and all its descendants.
	Config *Config
}

// SubContext extends a Context. Namespace is a single segment appended to the
// chain when non-empty; Tags and Extra are merged with these keys winning.
type SubContext struct {
	Namespace string
	Tags      Tags
	Extra     Extra
}

// NamespacePath joins the namespace chain with slashes.
func (c *Context) NamespacePath() string {
	if c == nil || len(c.Namespace) == 0 {
		return ""
	}
	n := len(c.Namespace) - 1
	for _, ns := range c.Namespace {
		n += len(ns)
	}
	buf := make([]byte, 0, n)
	for i, ns := range c.Namespace {
		if i > 0 {
			buf = append(buf, '/')
		}
		buf = append(buf, ns...)
	}
	return string(buf)
}

// clone returns a deep enough copy for callers to modify freely; Config is
// still shared.
func (c *Context) clone() Context {
	return Context{
		Namespace: slices.Clone(c.Namespace),
		Tags:      maps.Clone(c.Tags),
		Extra:     maps.Clone(c.Extra),
		Config:    c.Config,
	}
}

func mergeContexts(major *Context, subs ...SubContext) *Context {
	merged := &Context{
		Namespace: slices.Clone(major.Namespace),
		Tags:      make(Tags, len(major.Tags)),
		Extra:     make(Extra, len(major.Extra)),
		Config:    major.Config,
	}
	maps.Copy(merged.Tags, major.Tags)
	maps.Copy(merged.Extra, major.Extra)
	for _, sub := range subs {
		if sub.Namespace != "" {
			merged.Namespace = append(merged.Namespace, sub.Namespace)
		}
		maps.Copy(merged.Tags, sub.Tags)
		maps.Copy(merged.Extra, sub.Extra)
	}
	return merged
}
