package stats

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		base int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{35, 14},
		{90, 35},
		{128, 50},
		{255, 100},
	}
	for _, tt := range tests {
		if got := Percent(tt.base); got != tt.want {
			t.Errorf("Percent(%d) = %d, want %d", tt.base, got, tt.want)
		}
	}
}

func TestBandOf(t *testing.T) {
	tests := []struct {
		base int
		want Band
	}{
		{0, BandRed},
		{49, BandRed},
		{50, BandOrange},
		{89, BandOrange},
		{90, BandYellow},
		{119, BandYellow},
		{120, BandGreen},
		{255, BandGreen},
	}
	for _, tt := range tests {
		if got := BandOf(tt.base); got != tt.want {
			t.Errorf("BandOf(%d) = %s, want %s", tt.base, got, tt.want)
		}
	}
}

func TestBandClass(t *testing.T) {
	if got := BandYellow.Class(); got != "stat-yellow" {
		t.Errorf("Class() = %q", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Input{
		{"hp", 35}, {"attack", 55}, {"defense", 40},
		{"special-attack", 50}, {"special-defense", 50}, {"speed", 90},
	})
	if s.Total != 320 {
		t.Errorf("Total = %d, want 320", s.Total)
	}
	if len(s.Rows) != 6 || s.Rows[0].Name != "hp" || s.Rows[5].Name != "speed" {
		t.Fatalf("rows out of order: %+v", s.Rows)
	}
	if s.Rows[5].Band != BandYellow || s.Rows[5].Percent != 35 {
		t.Errorf("speed row = %+v", s.Rows[5])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Rows == nil || len(s.Rows) != 0 || s.Total != 0 {
		t.Errorf("Summarize(nil) = %+v", s)
	}
}
