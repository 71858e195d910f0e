// findable - Terminal proximity radar
// Places nearby devices around you on a radar display driven by
// signal-strength distance estimates.
//
// Controls:
//
//	Mouse drag  - Rotate/zoom the arrangement (drag around the center)
//	Scroll      - Zoom in/out
//	A/D         - Rotate left/right
//	+/-         - Adjust zoom
//	Space       - Toggle sweep
//	C           - Capture the current frame to a PNG
//	R           - Reset view (rotation 0, zoom 1)
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/harmonica"
	"github.com/spf13/cobra"

	"github.com/droplink/findable/config"
	"github.com/droplink/findable/math2d"
	"github.com/droplink/findable/radar"
	"github.com/droplink/findable/render"
	"github.com/droplink/findable/scan"
	"github.com/droplink/findable/track"
)

var (
	configPath  string
	replayPath  string
	recordPath  string
	demoDevices int
	demoSeed    uint64
)

func main() {
	cmd := &cobra.Command{
		Use:   "findable",
		Short: "Terminal proximity radar",
		Long: `findable - Terminal proximity radar

Shows nearby devices arranged around you, placed by distance estimate
and a stable per-name bearing. Rotate and zoom the whole arrangement
without moving the center.

Controls:
  Mouse drag  - Rotate/zoom around the center
  Scroll      - Zoom in/out
  A/D         - Rotate left/right
  +/-         - Adjust zoom
  Space       - Toggle sweep
  C           - Capture frame to PNG
  R           - Reset view
  ?           - Toggle HUD overlay
  Esc         - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "findable.toml", "Path to config file")
	cmd.Flags().StringVar(&replayPath, "replay", "", "Replay a recorded scan session instead of the demo scanner")
	cmd.Flags().StringVar(&recordPath, "record", "", "Record the scan session to this file on exit")
	cmd.Flags().IntVar(&demoDevices, "devices", 0, "Demo device count (0 = random population)")
	cmd.Flags().Uint64Var(&demoSeed, "seed", 1, "Demo scanner seed")

	distanceCmd := &cobra.Command{
		Use:   "distance <rssi>...",
		Short: "Estimate distance from RSSI readings",
		Long:  "Print the distance estimate for one or more RSSI readings (dBm) using the radar's path loss model.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistance(args)
		},
	}
	cmd.AddCommand(distanceCmd)

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func runDistance(args []string) error {
	for _, arg := range args {
		rssi, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid RSSI %q: %w", arg, err)
		}
		// "59" is shorthand for -59 dBm.
		if rssi > 0 {
			rssi = -rssi
		}
		feet := scan.EstimateDistanceFeet(rssi)
		fmt.Printf("%4d dBm  %6.1f ft  (%.1f m)\n", rssi, feet, feet/3.28084)
	}
	return nil
}

// source is the device feed: demo walker or session replay.
type source interface {
	Poll(now time.Time) []scan.DeviceSample
}

// deviceSet merges sample batches and ages out devices unseen for ttl.
type deviceSet struct {
	latest map[string]scan.DeviceSample
	ttl    time.Duration
}

func newDeviceSet(ttl time.Duration) *deviceSet {
	return &deviceSet{latest: make(map[string]scan.DeviceSample), ttl: ttl}
}

func (ds *deviceSet) update(batch []scan.DeviceSample, now time.Time) {
	for _, s := range batch {
		ds.latest[s.ID] = s
	}
	for id, s := range ds.latest {
		if now.Sub(s.SeenAt) > ds.ttl {
			delete(ds.latest, id)
		}
	}
}

// current returns the live samples in a stable name order.
func (ds *deviceSet) current() []scan.DeviceSample {
	samples := make([]scan.DeviceSample, 0, len(ds.latest))
	for _, s := range ds.latest {
		samples = append(samples, s)
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples
}

// spinAxis decays rotation velocity toward zero with a spring, so
// keyboard/mouse rotation keeps a little momentum.
type spinAxis struct {
	velocity float64
	accel    float64
	spring   harmonica.Spring
}

func newSpinAxis(fps int) *spinAxis {
	// Frequency 4.0 = moderate speed, damping 1.0 = critically damped.
	return &spinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

// update returns the rotation delta for this frame and decays velocity.
func (a *spinAxis) update() float64 {
	delta := a.velocity
	a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
	return delta
}

// hud is the text overlay drawn on top of the radar frame.
type hud struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	visible   bool
}

func newHUD() *hud {
	return &hud{fpsTime: time.Now(), visible: true}
}

func (h *hud) updateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func (h *hud) draw(ap *ansipixels.AnsiPixels, view *radar.View, devices, tracked int, recording bool) {
	if !h.visible {
		return
	}
	ap.WriteAt(0, 0, "%.0f FPS ", h.fps)
	ap.WriteCentered(0, "%d devices in range", devices)
	ap.WriteRight(0, "zoom %.2fx  rot %+.0f° ", view.ZoomScale(), view.Angle()*180/math.Pi)

	status := "space: sweep  r: reset  ?: hud"
	if recording {
		status = "● REC  " + status
	}
	ap.WriteAt(0, ap.H-1, "%s", status)
	ap.WriteRight(ap.H-1, "%d tracked ", tracked)
}

func run() (err error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Pick the device source.
	var src source
	switch {
	case replayPath != "":
		rec, err := scan.ReadRecording(replayPath)
		if err != nil {
			return err
		}
		src = scan.NewReplayer(rec, time.Now())
		log.Infof("replaying %s (%d frames)", replayPath, len(rec.Frames))
	default:
		src = scan.NewDemo(demoDevices, cfg.MaxRangeFeet, demoSeed)
	}

	var recording *scan.Recording
	if recordPath != "" {
		recording = &scan.Recording{}
	}

	// Initialize ansipixels for terminal rendering.
	ap := ansipixels.NewAnsiPixels(cfg.TargetFPS)
	if err := ap.Open(); err != nil {
		return fmt.Errorf("open ansipixels: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.SyncBackgroundColor()
	ap.MouseTrackingOn()
	ap.HideCursor()

	if ap.W <= 0 || ap.H <= 0 {
		return fmt.Errorf("invalid terminal size: %dx%d", ap.W, ap.H)
	}

	// Framebuffer uses 2x height for half-block characters.
	fb := render.NewFramebuffer(ap.W, ap.H*2)

	view := radar.NewView(cfg.MinScale, cfg.MaxScale)
	pinch := radar.NewPinch(view)
	tracker := track.NewTracker()
	spin := newSpinAxis(int(math.Round(cfg.TargetFPS)))
	overlay := newHUD()
	devices := newDeviceSet(cfg.DeviceTTL.Std())

	var scales radar.ScaleCache
	placerFor := func() radar.Placer {
		// Fit the display radius to the terminal, capped at the
		// configured radius; the feet→pixel ratio is memoized until
		// the geometry changes.
		radius := math.Min(float64(fb.Width), float64(fb.Height)) / 2
		radius = math.Min(radius-4, cfg.MaxRadiusPx)
		radius = math.Max(radius, 8) // tiny terminals still get a radar
		scale := scales.Get(radius, cfg.MaxRangeFeet)
		return radar.Placer{
			Scale:      scale,
			Origin:     math2d.V2(float64(fb.Width)/2, float64(fb.Height)/2),
			GridStepPx: cfg.GridStepFeet * scale.PixelsPerFoot,
		}
	}

	sweepOn := true
	sweepAngle := 0.0
	dragging := false
	var captureErr error

	ap.OnMouse = func() {
		placer := placerFor()
		switch {
		case ap.MouseWheelUp():
			view.ZoomBy(1.1)
		case ap.MouseWheelDown():
			view.ZoomBy(1 / 1.1)
		case ap.LeftDrag():
			// The center anchors the gesture; the pointer is the
			// second touch point. Circling the center rotates,
			// moving in or out zooms.
			dragging = true
			pointer := math2d.V2(float64(ap.Mx), float64(ap.My*2))
			pinch.Update([]math2d.Vec2{placer.Origin, pointer})
		case ap.MouseRelease():
			if dragging {
				dragging = false
				pinch.Update(nil)
			}
		}
	}
	ap.OnResize = func() error {
		fb.Resize(ap.W, ap.H*2)
		return nil
	}

	targetDuration := time.Duration(float64(time.Second) / cfg.TargetFPS)
	lastFrame := time.Now()
	lastPoll := time.Time{}

	for {
		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		if _, err := ap.ReadOrResizeOrSignalOnce(); err != nil {
			return fmt.Errorf("input error: %w", err)
		}

		// Process keyboard input from ap.Data.
		for _, b := range ap.Data {
			switch b {
			case 'a', 'A':
				spin.velocity -= 0.6 * dt
			case 'd', 'D':
				spin.velocity += 0.6 * dt
			case '+', '=':
				view.ZoomBy(1.1)
			case '-', '_':
				view.ZoomBy(1 / 1.1)
			case 'r', 'R':
				view.Reset()
				spin.velocity = 0
			case ' ':
				sweepOn = !sweepOn
			case 'c', 'C':
				captureErr = fb.SavePNG(fmt.Sprintf("findable-%d.png", now.Unix()))
			case '?':
				overlay.visible = !overlay.visible
			case 27: // Escape
				return finish(recording, recordPath)
			case 3, 4: // Ctrl-C, Ctrl-D
				return finish(recording, recordPath)
			}
		}

		// Rotation momentum.
		view.RotateBy(spin.update())

		// Poll the scanner on its own cadence, not per frame.
		if lastPoll.IsZero() || now.Sub(lastPoll) >= cfg.PollInterval.Std() {
			lastPoll = now
			batch := src.Poll(now)
			if recording != nil {
				recording.Record(batch, now)
			}
			devices.update(batch, now)
		}

		placer := placerFor()
		inRange := radar.FilterInRange(devices.current(), cfg.MaxRangeFeet)
		positions := placer.PlaceAll(inRange, view)

		observations := make([]track.Observation, len(inRange))
		for i, s := range inRange {
			observations[i] = track.Observation{
				ID:           s.ID,
				Position:     positions[i],
				DistanceFeet: s.DistanceFeet,
				Bearing:      radar.Bearing(s.Name),
			}
		}
		tracker.Observe(observations, now)

		if sweepOn {
			sweepAngle += cfg.SweepRPM / 60 * 2 * math.Pi * dt
		}

		drawFrame(fb, placer, positions, sweepAngle, sweepOn)

		ap.StartSyncMode()
		ap.ClearScreen()
		if err := ap.ShowScaledImage(fb.ToImage()); err != nil {
			return fmt.Errorf("show image: %w", err)
		}
		drawLabels(ap, inRange, positions)
		overlay.updateFPS()
		overlay.draw(ap, view, len(inRange), tracker.Len(), recording != nil)
		if captureErr != nil {
			ap.WriteCentered(ap.H-1, "capture failed: %v", captureErr)
		}
		ap.EndSyncMode()

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// finish flushes the recording, if any, before exit.
func finish(recording *scan.Recording, path string) error {
	if recording == nil || path == "" {
		return nil
	}
	if err := recording.WriteFile(path); err != nil {
		return fmt.Errorf("write recording: %w", err)
	}
	log.Infof("recorded %d frames to %s", len(recording.Frames), path)
	return nil
}

// Radar palette.
var (
	ringColor  = render.RGB(0, 80, 40)
	sweepColor = render.RGB(0, 200, 100)
	linkColor  = render.RGB(0, 60, 90)
	calmColor  = render.RGB(80, 220, 120)
	busyColor  = render.RGB(255, 120, 60)
)

// drawFrame renders rings, sweep, interaction links and device markers
// into the framebuffer.
func drawFrame(fb *render.Framebuffer, placer radar.Placer, positions []math2d.Vec2, sweepAngle float64, sweepOn bool) {
	fb.Clear()

	cx := int(math.Round(placer.Origin.X))
	cy := int(math.Round(placer.Origin.Y))
	radius := placer.Scale.MaxRadiusPx

	// Concentric range rings, quarter range apart.
	const ringCount = 4
	for i := 1; i <= ringCount; i++ {
		fb.DrawCircle(cx, cy, int(radius*float64(i)/ringCount), ringColor)
	}

	// Sweep ray with a fading trail.
	if sweepOn {
		const trail = 18
		const trailSpan = math.Pi / 3
		for i := trail; i >= 0; i-- {
			a := sweepAngle - trailSpan*float64(i)/trail
			fb.DrawRay(cx, cy, radius, a, render.Fade(sweepColor, float64(i)/trail))
		}
	}

	// Interaction links between close pairs, before markers so the
	// dots stay on top.
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			if radar.Interaction(positions[i], positions[j], radius) > 0.5 {
				fb.DrawLine(
					int(math.Round(positions[i].X)), int(math.Round(positions[i].Y)),
					int(math.Round(positions[j].X)), int(math.Round(positions[j].Y)),
					linkColor,
				)
			}
		}
	}

	// Device markers, colored by local crowding.
	for _, pos := range positions {
		density := radar.Density(pos, positions, radius) - 1 // exclude self
		heat := math.Min(density/3, 1)
		c := render.RGB(
			uint8(float64(calmColor.R)+(float64(busyColor.R)-float64(calmColor.R))*heat),
			uint8(float64(calmColor.G)+(float64(busyColor.G)-float64(calmColor.G))*heat),
			uint8(float64(calmColor.B)+(float64(busyColor.B)-float64(calmColor.B))*heat),
		)
		fb.FillCircle(int(math.Round(pos.X)), int(math.Round(pos.Y)), 2, c)
	}

	// The origin is "here"; it never moves.
	fb.FillCircle(cx, cy, 1, render.ColorWhite)
}

// drawLabels overlays device names next to their markers, in terminal
// cell coordinates (framebuffer y is doubled).
func drawLabels(ap *ansipixels.AnsiPixels, samples []scan.DeviceSample, positions []math2d.Vec2) {
	for i, s := range samples {
		x := int(math.Round(positions[i].X)) + 2
		y := int(math.Round(positions[i].Y / 2))
		if x < 0 || y <= 0 || y >= ap.H-1 || x+len(s.Name) >= ap.W {
			continue
		}
		ap.WriteAtStr(x, y, s.Name)
	}
}
