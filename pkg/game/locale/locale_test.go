package locale

import (
	"fmt"
	"testing"
)

func TestGet(t *testing.T) {
	if got := Get("PAUSED"); got != "Simulation paused." {
		t.Errorf("Get(PAUSED) = %q", got)
	}
	if got := fmt.Sprintf(Get("POWER_CHANGED"), "Shields", 2, 4); got != "Shields power 2/4." {
		t.Errorf("Get(POWER_CHANGED) = %q", got)
	}
	if got := Get("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("Get(NOT_A_KEY) = %q, want the key back", got)
	}
}
