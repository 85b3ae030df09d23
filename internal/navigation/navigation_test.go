package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigate(t *testing.T) {
	tests := []struct {
		name   string
		state  State
		keys   []string
		page   int
		buffer string
	}{
		{name: "next", state: State{Page: 0, TotalSlides: 11}, keys: []string{"l"}, page: 1},
		{name: "next stops at last", state: State{Page: 10, TotalSlides: 11}, keys: []string{" "}, page: 10},
		{name: "previous", state: State{Page: 3, TotalSlides: 11}, keys: []string{"h"}, page: 2},
		{name: "previous stops at first", state: State{Page: 0, TotalSlides: 11}, keys: []string{"up"}, page: 0},
		{name: "first", state: State{Page: 7, TotalSlides: 11}, keys: []string{"g", "g"}, page: 0},
		{name: "single g waits", state: State{Page: 7, TotalSlides: 11}, keys: []string{"g"}, page: 7, buffer: "g"},
		{name: "last", state: State{Page: 2, TotalSlides: 11}, keys: []string{"G"}, page: 10},
		{name: "numbered slide", state: State{Page: 0, TotalSlides: 11}, keys: []string{"4", "G"}, page: 3},
		{name: "numbered slide out of range", state: State{Page: 0, TotalSlides: 11}, keys: []string{"9", "9", "G"}, page: 10},
		{name: "repeat next", state: State{Page: 1, TotalSlides: 11}, keys: []string{"3", "j"}, page: 4},
		{name: "repeat previous", state: State{Page: 9, TotalSlides: 11}, keys: []string{"1", "2", "k"}, page: 0},
		{name: "digits accumulate", state: State{Page: 0, TotalSlides: 11}, keys: []string{"1", "0"}, page: 0, buffer: "10"},
		{name: "unknown key clears buffer", state: State{Page: 5, TotalSlides: 11}, keys: []string{"3", "x", "j"}, page: 6},
		{name: "g then digit", state: State{Page: 5, TotalSlides: 11}, keys: []string{"g", "2", "G"}, page: 1},
		{name: "empty deck", state: State{TotalSlides: 0}, keys: []string{"j"}, page: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state
			for _, k := range tt.keys {
				s = Navigate(s, k)
			}
			assert.Equal(t, tt.page, s.Page)
			assert.Equal(t, tt.buffer, s.Buffer)
			assert.Equal(t, tt.state.TotalSlides, s.TotalSlides)
		})
	}
}
