package grid

import (
	"errors"
	"math"
	"testing"
)

func TestHeightSampleClamp(t *testing.T) {
	if got := HeightSample(0, 1); got != SeaLevel {
		t.Fatalf("expected sea level for zero noise, got %v", got)
	}
	if got := HeightSample(1e9, 1); got != math.MaxUint16 {
		t.Fatalf("expected clamp to max sample, got %v", got)
	}
	if got := HeightSample(-1e9, 1); got != 0 {
		t.Fatalf("expected clamp to zero, got %v", got)
	}
	if got := HeightSample(0.6, 1); got != SeaLevel+1 {
		t.Fatalf("expected rounding up, got %v", got)
	}
	if got := HeightSample(1, 8192); got != SeaLevel+8192 {
		t.Fatalf("expected scaled sample, got %v", got)
	}
}

func TestNewHeightGridDimensions(t *testing.T) {
	for _, c := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -5}} {
		if _, err := NewHeightGrid(c[0], c[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("expected ErrInvalidDimensions for %vx%v, got %v", c[0], c[1], err)
		}
	}
	hg, err := NewHeightGrid(3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hg.Samples) != 6 {
		t.Fatalf("expected 6 samples, got %v", len(hg.Samples))
	}
}

func TestHeightGridStats(t *testing.T) {
	hg, _ := NewHeightGrid(2, 2)
	hg.Set(0, 0, 10)
	hg.Set(1, 0, 20)
	hg.Set(0, 1, 30)
	hg.Set(1, 1, 40)
	if got := hg.Mean(); got != 25 {
		t.Fatalf("expected mean 25, got %v", got)
	}
	if got := hg.Variance(); got != 125 {
		t.Fatalf("expected variance 125, got %v", got)
	}
}

func TestSlopeFlat(t *testing.T) {
	hg, _ := NewHeightGrid(8, 8)
	hg.FillBase(SeaLevel)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if s := hg.Slope(x, y); s != 0 {
				t.Fatalf("expected zero slope on flat grid at (%v, %v), got %v", x, y, s)
			}
		}
	}
}

func TestSlopeRamp(t *testing.T) {
	hg, _ := NewHeightGrid(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			hg.Set(x, y, uint16(1000*x))
		}
	}
	if s := hg.Slope(4, 4); math.Abs(s-1000) > 1e-9 {
		t.Fatalf("expected ramp slope 1000, got %v", s)
	}
}

func TestSlopeSingleSampleAxis(t *testing.T) {
	hg, _ := NewHeightGrid(1, 8)
	for y := 0; y < 8; y++ {
		hg.Set(0, y, uint16(500*y))
	}
	for y := 0; y < 8; y++ {
		s := hg.Slope(0, y)
		if math.IsNaN(s) {
			t.Fatalf("slope at (0, %v) is NaN", y)
		}
		if math.Abs(s-500) > 1e-9 {
			t.Fatalf("slope at (0, %v) = %v, expected 500", y, s)
		}
	}

	single, _ := NewHeightGrid(1, 1)
	single.Set(0, 0, SeaLevel)
	if s := single.Slope(0, 0); s != 0 {
		t.Fatalf("slope of a 1x1 grid = %v, expected 0", s)
	}
}

func TestWeightGridDimensions(t *testing.T) {
	if _, err := NewWeightGrid("sand", 0, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	wg, err := NewWeightGrid("sand", 4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wg.Set(1, 2, 200)
	if got := wg.At(1, 2); got != 200 {
		t.Fatalf("expected weight 200, got %v", got)
	}
}
