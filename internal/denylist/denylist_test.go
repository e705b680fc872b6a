package denylist

import (
	"errors"
	"testing"
)

func TestContainsIsCaseInsensitive(t *testing.T) {
	d := New(func() ([]string, error) {
		return []string{"ab12cd34", "XY99ZZ00QQ"}, nil
	})

	cases := []struct {
		id   string
		want bool
	}{
		{"AB12CD34", true},
		{"ab12cd34", true},
		{" Ab12Cd34 ", true},
		{"xy99zz00qq", true},
		{"UNKNOWN99", false},
	}

	for _, tc := range cases {
		if got := d.Contains(tc.id); got != tc.want {
			t.Errorf("Contains(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestRefreshReplacesSet(t *testing.T) {
	ids := []string{"FIRST111"}
	d := New(func() ([]string, error) {
		return ids, nil
	})

	if !d.Contains("FIRST111") {
		t.Fatal("initial load missing entry")
	}

	ids = []string{"SECOND22"}
	if err := d.Refresh(); err != nil {
		t.Fatal(err)
	}

	if d.Contains("FIRST111") {
		t.Error("stale entry survived refresh")
	}
	if !d.Contains("SECOND22") {
		t.Error("new entry missing after refresh")
	}
	if d.Size() != 1 {
		t.Errorf("size = %d, want 1", d.Size())
	}
}

func TestFailedRefreshKeepsPreviousSet(t *testing.T) {
	fail := false
	d := New(func() ([]string, error) {
		if fail {
			return nil, errors.New("db down")
		}
		return []string{"KEEP1234"}, nil
	})

	fail = true
	if err := d.Refresh(); err == nil {
		t.Fatal("expected refresh error")
	}

	if !d.Contains("KEEP1234") {
		t.Fatal("previous set lost after failed refresh")
	}
}
