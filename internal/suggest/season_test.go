package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeason(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{0, "winter"}, {2, "winter"},
		{3, "spring"}, {5, "spring"},
		{6, "summer"}, {8, "summer"},
		{9, "fall"}, {11, "fall"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, season(tt.month), "season(%d)", tt.month)
	}
}
