package gradient

import "testing"

func TestPaletteColorFor(t *testing.T) {
	p := DefaultPalette()

	// Age 0 samples the base of the ramp.
	if got := p.ColorFor(0); !colorNear(got, RGB8(139, 190, 28), 1e-6) {
		t.Errorf("ColorFor(0) = %v, want first stop", got)
	}

	// Age 2 with normalizer 10 hits the 0.2 stop exactly.
	if got := p.ColorFor(2); !colorNear(got, RGB8(162, 201, 38), 1e-6) {
		t.Errorf("ColorFor(2) = %v, want 0.2 stop", got)
	}

	// Ages past the normalizer saturate at the last stop.
	want := RGB8(255, 244, 76)
	if got := p.ColorFor(10); !colorNear(got, want, 1e-6) {
		t.Errorf("ColorFor(10) = %v, want last stop", got)
	}
	if got := p.ColorFor(1000); !colorNear(got, want, 1e-6) {
		t.Errorf("ColorFor(1000) = %v, want last stop", got)
	}
}

func TestPaletteDeadColor(t *testing.T) {
	p := DefaultPalette()
	if got := p.DeadColor(); got != DefaultDeadColor {
		t.Errorf("DeadColor() = %v, want %v", got, DefaultDeadColor)
	}
}

func TestNewPalettePanicsOnBadNormalizer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive normalizer")
		}
	}()
	NewPalette(DefaultAgeStops, 0, DefaultDeadColor)
}
