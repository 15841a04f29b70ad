package fractal

import (
	"reflect"
	"testing"
)

func TestRegistryCyclicIndexing(t *testing.T) {
	reg := NewRegistry()
	n := reg.Len()
	if n < 2 {
		t.Fatalf("registry has %d palettes", n)
	}

	if !reflect.DeepEqual(reg.At(n), reg.At(0)) {
		t.Errorf("At(%d) != At(0)", n)
	}
	if !reflect.DeepEqual(reg.At(-1), reg.At(n-1)) {
		t.Errorf("At(-1) != At(%d)", n-1)
	}
	if reg.Name(n+1) != reg.Name(1) {
		t.Errorf("Name(%d) = %q, want %q", n+1, reg.Name(n+1), reg.Name(1))
	}
}

func TestRegistryPalettesOpaqueAndNonEmpty(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < reg.Len(); i++ {
		p := reg.At(i)
		if len(p) == 0 {
			t.Fatalf("palette %q is empty", reg.Name(i))
		}
		for j, c := range p {
			if c.A != 255 {
				t.Errorf("palette %q entry %d: alpha %d", reg.Name(i), j, c.A)
			}
		}
	}
}

func TestSpectrumPalette(t *testing.T) {
	p := spectrumPalette(24)
	if len(p) != 24 {
		t.Fatalf("len = %d, want 24", len(p))
	}
	// A hue sweep at full value never lands on black.
	for i, c := range p {
		if c.R == 0 && c.G == 0 && c.B == 0 {
			t.Errorf("entry %d is black", i)
		}
	}
}
