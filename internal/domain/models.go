package domain

// Option is a selectable item. ID is unique within an option list, Label is
// displayed and searched, Value is carried through selection untouched.
type Option struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Value string `toml:"value"`
}

// OptionIDs returns the ids of opts in order
func OptionIDs(opts []Option) []string {
	ids := make([]string, 0, len(opts))
	for _, o := range opts {
		ids = append(ids, o.ID)
	}
	return ids
}

// OptionValues returns the values of opts in order
func OptionValues(opts []Option) []string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return values
}
