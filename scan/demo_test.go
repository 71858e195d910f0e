package scan

import (
	"testing"
	"time"
)

func TestDemoPopulation(t *testing.T) {
	d := NewDemo(0, 35, 42)
	samples := d.Poll(time.Now())
	if len(samples) < DemoDeviceMin || len(samples) > DemoDeviceMax {
		t.Errorf("default population = %d, want in [%d,%d]", len(samples), DemoDeviceMin, DemoDeviceMax)
	}

	d = NewDemo(3, 35, 42)
	if got := len(d.Poll(time.Now())); got != 3 {
		t.Errorf("explicit population = %d, want 3", got)
	}
}

func TestDemoStableIdentities(t *testing.T) {
	d := NewDemo(5, 35, 1)
	now := time.Now()
	first := d.Poll(now)
	second := d.Poll(now.Add(time.Second))
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("device %d changed ID between polls", i)
		}
		if first[i].Name != second[i].Name {
			t.Errorf("device %d changed name between polls", i)
		}
	}
}

func TestDemoDistancesInRange(t *testing.T) {
	const maxRange = 35.0
	d := NewDemo(10, maxRange, 7)
	now := time.Now()
	for i := 0; i < 500; i++ {
		now = now.Add(100 * time.Millisecond)
		for _, s := range d.Poll(now) {
			if s.DistanceFeet < 0 {
				t.Fatalf("negative distance %v for %s", s.DistanceFeet, s.Name)
			}
			// RSSI jitter can push the estimate past the walk bound,
			// but not unboundedly far.
			if s.DistanceFeet > maxRange*2 {
				t.Fatalf("distance %v way past range for %s", s.DistanceFeet, s.Name)
			}
		}
	}
}

func TestDemoUniqueNames(t *testing.T) {
	d := NewDemo(20, 35, 3)
	seen := map[string]bool{}
	for _, s := range d.Poll(time.Now()) {
		if seen[s.Name] {
			t.Errorf("duplicate demo name %q", s.Name)
		}
		seen[s.Name] = true
	}
}
