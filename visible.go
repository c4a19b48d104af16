package chartkit

// Visibility tracks which dataset indices the legend has toggled
// off. It outlives individual recomputations: swapping the data in
// keeps the current selection.
type Visibility struct {
	disabled map[int]struct{}
}

func NewVisibility() *Visibility {
	return &Visibility{
		disabled: make(map[int]struct{}),
	}
}

// Toggle flips dataset i and reports its new disabled state.
func (v *Visibility) Toggle(i int) bool {
	if _, ok := v.disabled[i]; ok {
		delete(v.disabled, i)
		return false
	}
	v.disabled[i] = struct{}{}
	return true
}

func (v *Visibility) Disabled(i int) bool {
	_, ok := v.disabled[i]
	return ok
}

// ShowAll clears the selection.
func (v *Visibility) ShowAll() {
	v.disabled = make(map[int]struct{})
}

// HideAll disables datasets 0..n-1.
func (v *Visibility) HideAll(n int) {
	v.disabled = make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		v.disabled[i] = struct{}{}
	}
}

// Visible filters out disabled datasets, preserving order. The
// filtered list, not the raw one, feeds scale and layout, so hiding
// a dataset reshapes the axis when it changes the data range.
func (v *Visibility) Visible(datasets []Dataset) []Dataset {
	out := make([]Dataset, 0, len(datasets))
	for i, set := range datasets {
		if v.Disabled(i) {
			continue
		}
		out = append(out, set)
	}
	return out
}

// VisibleIndices maps positions in the filtered list back to original
// dataset indices.
func (v *Visibility) VisibleIndices(n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !v.Disabled(i) {
			out = append(out, i)
		}
	}
	return out
}
