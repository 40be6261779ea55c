package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldForSearch(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"ABC-123", "abc-123"},
		{"José", "jose"},
		{"AÇÚCAR", "acucar"},
		{"Observação", "observacao"},
		{"nf-100", "nf-100"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, foldForSearch(tc.in), "folding %q", tc.in)
	}
}
