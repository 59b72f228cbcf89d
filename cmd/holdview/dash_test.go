package main

import (
	"testing"

	"github.com/seancribb/holdview/internal/dashboard"
	"github.com/seancribb/holdview/internal/models"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line     string
		wantKind dashboard.ActionKind
		wantQuit bool
		wantOK   bool
	}{
		{"filter aap", dashboard.ActionFilter, false, true},
		{"filter", dashboard.ActionFilter, false, true},
		{"tab performance", dashboard.ActionSelectTab, false, true},
		{"horizon YTD", dashboard.ActionSelectHorizon, false, true},
		{"reload", dashboard.ActionReload, false, true},
		{"logout", dashboard.ActionLogout, false, true},
		{"quit", "", true, false},
		{"q", "", true, false},
		{"", "", false, false},
		{"frobnicate", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			action, quit, ok := parseCommand(tt.line)
			if quit != tt.wantQuit || ok != tt.wantOK {
				t.Fatalf("parseCommand(%q) = quit %v ok %v, want %v %v", tt.line, quit, ok, tt.wantQuit, tt.wantOK)
			}
			if ok && action.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", action.Kind, tt.wantKind)
			}
		})
	}

	action, _, _ := parseCommand("filter apple inc")
	if action.Term != "apple inc" {
		t.Errorf("multi-word term = %q", action.Term)
	}
	action, _, _ = parseCommand("horizon 1W")
	if action.Horizon != models.HorizonWeek {
		t.Errorf("horizon = %s", action.Horizon)
	}
}
