package nslog

import "strings"

type ignoreList struct {
	names map[string]struct{}
}

func parseIgnoreList(csv string) *ignoreList {
	list := &ignoreList{}
	for part := range strings.SplitSeq(csv, ",") {
		name := strings.ToUpper(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if list.names == nil {
			list.names = make(map[string]struct{})
		}
		list.names[name] = struct{}{}
	}
	return list
}

func (l *ignoreList) contains(name string) bool {
	if l == nil || len(l.names) == 0 {
		return false
	}
	_, ok := l.names[strings.ToUpper(name)]
	return ok
}

// SetIgnore replaces the namespace ignore list with the comma separated
// names in csv. Matching is case insensitive and surrounding whitespace is
// trimmed.
func (r *Runtime) SetIgnore(csv string) {
	r.ignore.Store(parseIgnoreList(csv))
}

// Ignored reports whether name is on the ignore list.
func (r *Runtime) Ignored(name string) bool {
	return r.ignore.Load().contains(name)
}

// For returns a logger for key. The namespace segment is key itself for
// strings, the function name for functions and the type name otherwise.
// Ignored names get the null logger; everything else is a fork of the root.
func (r *Runtime) For(key any) Logger {
	name := keyName(key)
	if r.Ignored(name) {
		return Noop()
	}
	return r.root.Fork(SubContext{Namespace: name})
}

// SetIgnore replaces the ignore list of the Default runtime.
func SetIgnore(csv string) {
	Default().SetIgnore(csv)
}

// For returns a logger for key from the Default runtime.
func For(key any) Logger {
	return Default().For(key)
}
