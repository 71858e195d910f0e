package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Frame is one polling tick of a recorded scan session.
type Frame struct {
	Offset  time.Duration  `json:"offset"`
	Samples []DeviceSample `json:"samples"`
}

// Recording is a captured scan session that can be replayed offline.
type Recording struct {
	StartedAt time.Time `json:"started_at"`
	Frames    []Frame   `json:"frames"`
}

// Record appends the batch at the given wall-clock time.
func (r *Recording) Record(samples []DeviceSample, now time.Time) {
	if r.StartedAt.IsZero() {
		r.StartedAt = now
	}
	// Copy so later supersessions by the caller can't alias in.
	batch := make([]DeviceSample, len(samples))
	copy(batch, samples)
	r.Frames = append(r.Frames, Frame{Offset: now.Sub(r.StartedAt), Samples: batch})
}

// WriteFile writes the recording as pretty-printed JSON.
func (r *Recording) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recording: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRecording reads a recording written by WriteFile.
func ReadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var r Recording
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal recording: %w", err)
	}
	if len(r.Frames) == 0 {
		return nil, fmt.Errorf("recording %s contains no frames", path)
	}
	return &r, nil
}

// Replayer plays a recording back against wall-clock time, looping
// when it runs off the end.
type Replayer struct {
	rec     *Recording
	started time.Time
	cursor  int
}

// NewReplayer starts replay at now.
func NewReplayer(rec *Recording, now time.Time) *Replayer {
	return &Replayer{rec: rec, started: now}
}

// Poll returns the samples of the most recent frame at or before the
// current replay offset. Before the first frame it returns the first
// frame's samples so the display is never empty.
func (p *Replayer) Poll(now time.Time) []DeviceSample {
	span := p.rec.Frames[len(p.rec.Frames)-1].Offset
	elapsed := now.Sub(p.started)
	if span > 0 {
		elapsed %= span + time.Second
	}
	if elapsed < p.rec.Frames[p.cursor].Offset {
		p.cursor = 0
	}
	for p.cursor+1 < len(p.rec.Frames) && p.rec.Frames[p.cursor+1].Offset <= elapsed {
		p.cursor++
	}
	return p.rec.Frames[p.cursor].Samples
}
