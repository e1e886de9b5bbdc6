package multiselect

import "optgrip/internal/domain"

// SelectionUpdate describes a change to the host-owned selection: either a
// replacement list or a function of the previous list.
type SelectionUpdate struct {
	next      []domain.Option
	transform func(prev []domain.Option) []domain.Option
}

// Replace builds an update that discards the previous selection
func Replace(next []domain.Option) SelectionUpdate {
	return SelectionUpdate{next: next}
}

// Transform builds an update computed from the previous selection
func Transform(fn func(prev []domain.Option) []domain.Option) SelectionUpdate {
	return SelectionUpdate{transform: fn}
}

// Resolve applies the update to prev. prev is never modified.
func (u SelectionUpdate) Resolve(prev []domain.Option) []domain.Option {
	if u.transform != nil {
		return u.transform(prev)
	}
	return u.next
}

// Setter is the mutator a host hands to the widget. The widget reports every
// add and remove through it and never edits its own snapshot.
type Setter func(SelectionUpdate)

// Contains reports whether selected holds an option with id
func Contains(selected []domain.Option, id string) bool {
	return indexOf(selected, id) >= 0
}

// Remove returns selected without the option carrying id. The remaining
// options keep their order.
func Remove(selected []domain.Option, id string) []domain.Option {
	out := make([]domain.Option, 0, len(selected))
	for _, s := range selected {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// Toggle removes option when an entry with its id is selected and appends it
// otherwise.
func Toggle(selected []domain.Option, option domain.Option) []domain.Option {
	if Contains(selected, option.ID) {
		return Remove(selected, option.ID)
	}
	out := make([]domain.Option, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, option)
}

func indexOf(selected []domain.Option, id string) int {
	for i, s := range selected {
		if s.ID == id {
			return i
		}
	}
	return -1
}
