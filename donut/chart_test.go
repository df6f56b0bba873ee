package donut

import (
	"fmt"
	"math"
	"testing"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	data := []DataPoint{{ID: "a", Value: 1}}

	bad := []Config{
		{InnerRadius: 160, OuterRadius: 100, StartAngle: -math.Pi, EndAngle: 0, Width: 100, Height: 100},
		{InnerRadius: 100, OuterRadius: 100, StartAngle: -math.Pi, EndAngle: 0, Width: 100, Height: 100},
		{InnerRadius: 10, OuterRadius: 20, StartAngle: 1, EndAngle: 1, Width: 100, Height: 100},
		{InnerRadius: 10, OuterRadius: 20, StartAngle: -math.Pi, EndAngle: 0},
	}
	for i, cfg := range bad {
		fs := newFakeSurface()
		if _, err := New(cfg, fs, data, 0); err != ErrInvalidConfig {
			t.Errorf("config %d: got %v, want ErrInvalidConfig", i, err)
		}
		if fs.addCalls != 0 {
			t.Errorf("config %d: surface touched before validation", i)
		}
	}
}

func TestNewSurfaceFailureLeavesNothingBehind(t *testing.T) {
	fs := newFakeSurface()
	fs.failAdd = true
	_, err := New(testConfig(), fs, []DataPoint{{ID: "a", Value: 1}}, 0)
	if err == nil {
		t.Fatal("New succeeded with a failing surface")
	}
	if len(fs.shapes) != 0 {
		t.Fatalf("%d drawables leaked", len(fs.shapes))
	}
}

func TestAutoAssignedIDs(t *testing.T) {
	c, _ := testChart(t, []DataPoint{
		{Value: 25},
		{Value: 25},
		{ID: "named", Value: 50},
	})
	got := c.Slices()
	want := []string{"slice-0", "slice-1", "named"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("slice %d id %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestLabelIsIndependentSideChannel(t *testing.T) {
	fs := newFakeSurface()
	cfg := testConfig()
	cfg.FormatLabel = func(v float64) string { return fmt.Sprintf("%.0f EUR", v) }
	c, err := New(cfg, fs, []DataPoint{{ID: "a", Value: 1}}, 500)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if fs.label != "500 EUR" {
		t.Fatalf("initial label %q", fs.label)
	}

	paths := fs.shapes[0].pathSets
	if err := c.UpdateLabelValue(1234); err != nil {
		t.Fatalf("UpdateLabelValue: %v", err)
	}
	if fs.label != "1234 EUR" {
		t.Errorf("label %q", fs.label)
	}
	if fs.shapes[0].pathSets != paths {
		t.Error("label update redrew slice geometry")
	}
	if c.Transitioning() {
		t.Error("label update started a transition")
	}
}

func TestSliceAt(t *testing.T) {
	c, _ := testChart(t, []DataPoint{
		{ID: "a", Value: 30},
		{ID: "b", Value: 70},
	})
	// Center is (200, 150); straight up at radius 130 lands in b's span.
	if id, ok := c.SliceAt(200, 20); !ok || id != "b" {
		t.Errorf("top click: %q, %v", id, ok)
	}
	// Up-left at 45 degrees, radius ~130: angle -3pi/4 is inside a.
	r := 130.0 / math.Sqrt2
	if id, ok := c.SliceAt(200-r, 150-r); !ok || id != "a" {
		t.Errorf("up-left click: %q, %v", id, ok)
	}
	// Inside the hole and outside the ring hit nothing.
	if _, ok := c.SliceAt(200, 140); ok {
		t.Error("hit inside the hole")
	}
	if _, ok := c.SliceAt(200, 150+130); ok {
		t.Error("hit in the empty lower half")
	}
	// A click exactly on the configured end angle lands in the last slice.
	if id, ok := c.SliceAt(200+130, 150); !ok || id != "b" {
		t.Errorf("end-boundary click: %q, %v", id, ok)
	}
}

func TestDestroyIdempotent(t *testing.T) {
	c, fs := testChart(t, []DataPoint{
		{ID: "a", Value: 40},
		{ID: "b", Value: 60},
	})

	if err := c.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if err := c.Destroy(); err != nil {
		t.Fatalf("second Destroy: %v", err)
	}
	if !fs.destroyed {
		t.Error("surface not destroyed")
	}
	if len(fs.shapes) != 0 {
		t.Errorf("%d owner handles not released", len(fs.shapes))
	}
	if len(c.Slices()) != 0 {
		t.Error("registry not cleared")
	}

	if err := c.UpdateData([]DataPoint{{ID: "a", Value: 1}}); err != ErrDestroyed {
		t.Errorf("UpdateData after destroy: %v", err)
	}
	if err := c.Step(1); err != ErrDestroyed {
		t.Errorf("Step after destroy: %v", err)
	}
	if err := c.Activate("a"); err != ErrDestroyed {
		t.Errorf("Activate after destroy: %v", err)
	}
	if err := c.UpdateLabelValue(1); err != ErrDestroyed {
		t.Errorf("UpdateLabelValue after destroy: %v", err)
	}
}

func TestDestroyDuringTransition(t *testing.T) {
	c, fs := testChart(t, []DataPoint{
		{ID: "a", Value: 40},
		{ID: "b", Value: 60},
	})
	var cl clock

	if err := c.UpdateData([]DataPoint{{ID: "a", Value: 100}}); err != nil {
		t.Fatalf("UpdateData: %v", err)
	}
	cl.step(t, c, 5)

	if err := c.Destroy(); err != nil {
		t.Fatalf("Destroy mid-transition: %v", err)
	}
	if len(fs.shapes) != 0 {
		t.Errorf("%d drawables leaked", len(fs.shapes))
	}
}

func TestDestroyReleasesUncommittedShapes(t *testing.T) {
	c, fs := testChart(t, []DataPoint{{ID: "a", Value: 100}})
	var cl clock

	// The new id gets a drawable that only the abandoned timeline knows
	// about; Destroy must hand it back too.
	if err := c.UpdateData([]DataPoint{
		{ID: "a", Value: 50},
		{ID: "b", Value: 50},
	}); err != nil {
		t.Fatalf("UpdateData: %v", err)
	}
	cl.step(t, c, 5)

	if err := c.Destroy(); err != nil {
		t.Fatalf("Destroy mid-transition: %v", err)
	}
	if len(fs.shapes) != 0 {
		t.Errorf("%d drawables leaked", len(fs.shapes))
	}
}
