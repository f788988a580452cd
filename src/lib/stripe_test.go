package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInCents(t *testing.T) {
	cases := []struct {
		total float64
		cents int64
	}{
		{0, 0},
		{0.58, 58},
		{19.5, 1950},
		{169.5, 16950},
		{214.70, 21470},
		{149.99, 14999},
	}
	for _, c := range cases {
		assert.Equal(t, c.cents, AmountInCents(c.total), "total %v", c.total)
	}
}
