package view

import "mausam-api/internal/services/weather"

// Favorites is an insertion-ordered set of city names. Membership ignores case.
type Favorites struct {
	names []string
}

// NewFavorites builds a set from stored names, dropping blanks and later duplicates.
func NewFavorites(names []string) *Favorites {
	f := &Favorites{names: []string{}}
	for _, n := range names {
		if n == "" || f.Contains(n) {
			continue
		}
		f.names = append(f.names, n)
	}
	return f
}

func (f *Favorites) Contains(city string) bool {
	return f.index(city) >= 0
}

// Toggle adds city when absent and removes it when present. It reports
// whether city is a favorite afterwards.
func (f *Favorites) Toggle(city string) bool {
	if i := f.index(city); i >= 0 {
		f.names = append(f.names[:i], f.names[i+1:]...)
		return false
	}
	f.names = append(f.names, city)
	return true
}

// List returns the names in insertion order.
func (f *Favorites) List() []string {
	return append([]string{}, f.names...)
}

func (f *Favorites) Len() int {
	return len(f.names)
}

func (f *Favorites) index(city string) int {
	for i, n := range f.names {
		if weather.SameCity(n, city) {
			return i
		}
	}
	return -1
}
