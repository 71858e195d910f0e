package scan

import (
	"path/filepath"
	"testing"
	"time"
)

func makeRecording(t *testing.T) (*Recording, time.Time) {
	t.Helper()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := &Recording{}
	d := NewDemo(4, 35, 9)
	for i := 0; i < 5; i++ {
		now := start.Add(time.Duration(i) * time.Second)
		rec.Record(d.Poll(now), now)
	}
	return rec, start
}

func TestRecordingRoundTrip(t *testing.T) {
	rec, _ := makeRecording(t)
	path := filepath.Join(t.TempDir(), "session.json")

	if err := rec.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadRecording(path)
	if err != nil {
		t.Fatalf("ReadRecording: %v", err)
	}
	if len(got.Frames) != len(rec.Frames) {
		t.Fatalf("frames = %d, want %d", len(got.Frames), len(rec.Frames))
	}
	if got.Frames[2].Offset != 2*time.Second {
		t.Errorf("frame 2 offset = %v, want 2s", got.Frames[2].Offset)
	}
	if got.Frames[0].Samples[0].Name != rec.Frames[0].Samples[0].Name {
		t.Errorf("sample names did not survive the round trip")
	}
}

func TestReadRecordingEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := (&Recording{}).WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ReadRecording(path); err == nil {
		t.Error("ReadRecording accepted a recording with no frames")
	}
}

func TestReplayerFollowsOffsets(t *testing.T) {
	rec, _ := makeRecording(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewReplayer(rec, start)

	// Before the second frame's offset we still see frame 0.
	got := p.Poll(start.Add(500 * time.Millisecond))
	if got[0].SeenAt != rec.Frames[0].Samples[0].SeenAt {
		t.Error("expected frame 0 before its successor's offset")
	}

	// At 2.5s in, frame 2 (offset 2s) is current.
	got = p.Poll(start.Add(2500 * time.Millisecond))
	if got[0].SeenAt != rec.Frames[2].Samples[0].SeenAt {
		t.Error("expected frame 2 at 2.5s")
	}
}

func TestReplayerLoops(t *testing.T) {
	rec, _ := makeRecording(t)
	start := time.Now()
	p := NewReplayer(rec, start)

	// Far past the end: replay wraps instead of pinning to the last frame forever.
	if got := p.Poll(start.Add(time.Hour)); len(got) == 0 {
		t.Error("looped replay returned no samples")
	}
	// And keeps answering on subsequent polls.
	if got := p.Poll(start.Add(time.Hour + time.Second)); len(got) == 0 {
		t.Error("replay stalled after looping")
	}
}
