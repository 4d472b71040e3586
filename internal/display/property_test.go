package display

import "testing"

func TestProperty_Cycle(t *testing.T) {
	for _, start := range Properties {
		p := start
		for i := 0; i < len(Properties); i++ {
			p = p.Next()
		}
		if p != start {
			t.Errorf("Next x4 from %s returned %s", start, p)
		}

		if start.Next().Prev() != start {
			t.Errorf("Prev is not the inverse of Next for %s", start)
		}
		if start.Prev().Next() != start {
			t.Errorf("Next is not the inverse of Prev for %s", start)
		}
	}
}

func TestProperty_Order(t *testing.T) {
	if Brightness.Next() != Red || Red.Next() != Green || Green.Next() != Blue || Blue.Next() != Brightness {
		t.Error("unexpected Next order")
	}
	if Brightness.Prev() != Blue {
		t.Errorf("expected Brightness.Prev() = Blue, got %s", Brightness.Prev())
	}
}

func TestScaleValue(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 100},
		{1, 10},
		{5, 50},
		{10, 100},
		{11, 100},
		{-1, 100},
	}
	for _, tt := range tests {
		if got := ScaleValue(tt.level); got != tt.want {
			t.Errorf("ScaleValue(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGammaString(t *testing.T) {
	g := Gamma{R: 80, G: 100, B: 5}
	if g.String() != "0.80:1.00:0.05" {
		t.Errorf("unexpected gamma string %s", g.String())
	}
}
