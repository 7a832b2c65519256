package utils

import "testing"

func TestCleanFileName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"a/b\\c", "a_b_c"},
		{`<>:"|?*`, "_______"},
		{"  spaced  ", "spaced"},
		{"tab\tname", "tab_name"},
	}
	for _, c := range cases {
		if got := CleanFileName(c.input); got != c.want {
			t.Fatalf("CleanFileName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
