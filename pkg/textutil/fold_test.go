package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"Lámpara", "lampara"},
		{"ERGONÓMICA", "ergonomica"},
		{"pingüino", "pinguino"},
		{"Ñandú", "nandu"},
		{"sin tildes", "sin tildes"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, Fold(c.in), "Fold(%q)", c.in)
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Lámpara de escritorio", "lampara"))
	assert.True(t, ContainsFold("Silla ergonómica", "ERGONÓMICA"))
	assert.False(t, ContainsFold("Silla", "mesa"))
}
