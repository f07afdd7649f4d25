package locations

import (
	"strings"
	"testing"
	"time"
)

func TestRegistryKeys(t *testing.T) {
	keys := Keys()
	want := []string{Portland, I5Corridor, Salem, Eugene}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("key %d: expected %q, got %q", i, key, keys[i])
		}
		if !IsValid(key) {
			t.Errorf("expected %q to be valid", key)
		}
	}

	if IsValid("Bend") {
		t.Error("unexpected key accepted")
	}
}

func TestDisplayText(t *testing.T) {
	if got := DisplayText(Salem); !strings.Contains(got, "Public Service Building") || !strings.Contains(got, "Salem, OR 97310") {
		t.Errorf("unexpected Salem display text: %q", got)
	}
	if got := DisplayText(I5Corridor); !strings.Contains(got, "(Message courier to set location)") {
		t.Errorf("expected note in I5 Corridor display text, got %q", got)
	}
	if got := DisplayText("Bend"); got != "Bend" {
		t.Errorf("unknown key should pass through, got %q", got)
	}
}

func TestAddress(t *testing.T) {
	if got := Address(Portland); !strings.Contains(got, "1555 N Tomahawk Island Dr") {
		t.Errorf("unexpected Portland address: %q", got)
	}
	if got := Address("nowhere"); got != "nowhere" {
		t.Errorf("unknown key should pass through, got %q", got)
	}
}

func TestParseAllowedDates(t *testing.T) {
	dates := ParseAllowedDates()
	if len(dates) != len(AllowedDates) {
		t.Fatalf("expected %d dates, got %d", len(AllowedDates), len(dates))
	}
	for _, date := range dates {
		if day := date.Weekday(); day != time.Saturday && day != time.Sunday {
			t.Errorf("allowed date %s is not a weekend day", date.Format("2006-01-02"))
		}
	}
}
