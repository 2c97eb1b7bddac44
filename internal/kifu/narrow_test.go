// path: internal/kifu/narrow_test.go
package kifu

import "testing"

func TestNarrow(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"▲４８金", "▲48金"},
		{"▲１３歩不成", "▲13歩不成"},
		{"△同金上", "△同金上"},
		{"▲８８と左上", "▲88と左上"},
	}
	for _, c := range cases {
		if got := Narrow(c.in); got != c.want {
			t.Errorf("Narrow(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
