package input

// items is the list owned by one List call. Append, replace and remove are
// the only mutations, so the user-visible range is always 1..len.
type items struct {
	values []string
}

func newItems(initial []string) *items {
	values := make([]string, len(initial))
	copy(values, initial)
	return &items{values: values}
}

func (l *items) len() int { return len(l.values) }

func (l *items) at(i int) string { return l.values[i] }

func (l *items) append(value string) {
	l.values = append(l.values, value)
}

func (l *items) replace(i int, value string) {
	l.values[i] = value
}

func (l *items) remove(i int) {
	l.values = append(l.values[:i], l.values[i+1:]...)
}

// snapshot returns a copy the caller may keep.
func (l *items) snapshot() []string {
	out := make([]string, len(l.values))
	copy(out, l.values)
	return out
}
