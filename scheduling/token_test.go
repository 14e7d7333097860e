package scheduling

import (
	"strconv"
	"testing"
)

func TestNextToken(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want string
	}{
		{"empty list", nil, "#1"},
		{"sequential", []string{"#1", "#2", "#3"}, "#4"},
		{"gaps ignored", []string{"#1", "#3", "#7"}, "#8"},
		{"unordered", []string{"#9", "#2"}, "#10"},
		{"unparseable entries contribute zero", []string{"walk-in", "", "#5"}, "#6"},
		{"all unparseable", []string{"n/a", "token"}, "#1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NextToken(c.in); got != c.want {
				t.Errorf("NextToken(%v) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestNextTokenMonotonic(t *testing.T) {
	tokens := []string{}
	for i := 0; i < 25; i++ {
		next := NextToken(tokens)
		want := "#" + strconv.Itoa(i+1)
		if next != want {
			t.Fatalf("step %d: got %q, want %q", i, next, want)
		}
		tokens = append(tokens, next)
	}
}
