package input

import (
	"errors"
	"testing"

	"starship/pkg/engine/errs"
)

var testCtx = ParseContext{
	Systems: []string{"Shields", "Engines", "Oxygen", "WeaponControl", "Medbay"},
	Doors:   []string{"0_3_1_3", "1_1_2_1"},
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Intent
	}{
		{"", Intent{Action: ActionNone}},
		{"power shields", Intent{Action: ActionAddPower, Target: "Shields"}},
		{"add oxygn", Intent{Action: ActionAddPower, Target: "Oxygen"}},
		{"  Remove   ENGINES ", Intent{Action: ActionRemovePower, Target: "Engines"}},
		{"depower weapon control", Intent{Action: ActionRemovePower, Target: "WeaponControl"}},
		{"power", Intent{Action: ActionAddPower}},
		{"powr med", Intent{Action: ActionAddPower, Target: "Medbay"}},
		{"door 1_1_2_1", Intent{Action: ActionToggleDoor, Target: "1_1_2_1"}},
		{"open 0_3_1_3", Intent{Action: ActionToggleDoor, Target: "0_3_1_3"}},
		{"pause", Intent{Action: ActionPause}},
		{"quit", Intent{Action: ActionQuit}},
		{"halp", Intent{Action: ActionHelp}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(testCtx, tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	lines := []string{
		"fly north",
		"do shields",
		"door",
		"door 9_9_9_9",
		"power warp",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(testCtx, line)
			if !errors.Is(err, errs.ErrInvalidOperation) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidOperation", line, err)
			}
		})
	}
}

func TestEvent_Intent(t *testing.T) {
	tests := []struct {
		ev   Event
		want Intent
	}{
		{Event{Code: "space"}, Intent{Action: ActionPause}},
		{Event{Code: "+"}, Intent{Action: ActionAddPower}},
		{Event{Line: "q"}, Intent{Action: ActionQuit}},
		{Event{Line: "power engines"}, Intent{Action: ActionAddPower, Target: "Engines"}},
		{Event{Code: "arrow_left"}, Intent{Action: ActionNone}},
	}
	for _, tt := range tests {
		got, err := tt.ev.Intent(testCtx)
		if err != nil {
			t.Errorf("%+v.Intent() error = %v", tt.ev, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%+v.Intent() = %+v, want %+v", tt.ev, got, tt.want)
		}
	}
}
