package terminal

import "testing"

func TestGetSize_NotATerminal(t *testing.T) {
	w, h := GetSize(-1)
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("GetSize(-1) = %d, %d, want %d, %d", w, h, DefaultWidth, DefaultHeight)
	}
}

func TestRuleWidth(t *testing.T) {
	cases := []struct{ in, want int }{
		{200, MaxRuleWidth},
		{72, 72},
		{50, 50},
		{5, MinRuleWidth},
	}
	for _, c := range cases {
		if got := RuleWidth(c.in); got != c.want {
			t.Errorf("RuleWidth(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
