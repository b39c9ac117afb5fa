package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFavorites_Dedupes(t *testing.T) {
	f := NewFavorites([]string{"Delhi", "", "delhi", "Mumbai", "DELHI"})

	assert.Equal(t, []string{"Delhi", "Mumbai"}, f.List())
	assert.Equal(t, 2, f.Len())
}

func TestFavorites_Toggle(t *testing.T) {
	f := NewFavorites(nil)

	assert.True(t, f.Toggle("Delhi"))
	assert.True(t, f.Toggle("Chennai"))
	assert.True(t, f.Contains("CHENNAI"))
	assert.Equal(t, []string{"Delhi", "Chennai"}, f.List())

	assert.False(t, f.Toggle("delhi"))
	assert.Equal(t, []string{"Chennai"}, f.List())

	assert.True(t, f.Toggle("Delhi"))
	assert.Equal(t, []string{"Chennai", "Delhi"}, f.List(), "re-added at the end")
}

func TestFavorites_ListIsACopy(t *testing.T) {
	f := NewFavorites([]string{"Delhi"})

	l := f.List()
	l[0] = "Changed"

	assert.Equal(t, []string{"Delhi"}, f.List())
}
