package animations

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/yohamta/donburi/features/math"
)

func testClip(name string, loop bool, durations ...time.Duration) *Clip {
	c := &Clip{Name: name, Loop: loop, Tags: NewTagSet()}
	for i, d := range durations {
		c.Frames = append(c.Frames, Frame{
			Source:   image.Rect(i*16, 0, (i+1)*16, 16),
			Duration: d,
		})
	}
	return c
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestPlayerPlayRejectsNilClip(t *testing.T) {
	p := NewPlayer()
	clip := testClip("idle", true, ms(100), ms(100))
	if err := p.Play(clip, "first"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	p.Update(ms(100))

	if err := p.Play(nil, "second"); !errors.Is(err, ErrNilClip) {
		t.Fatalf("expected ErrNilClip, got %v", err)
	}
	if p.Clip() != clip || p.Index() != 1 || p.Pending() != "first" {
		t.Fatalf("state changed after rejected Play: clip=%v index=%d pending=%q", p.Clip(), p.Index(), p.Pending())
	}
}

func TestPlayerReplayDoesNotRestart(t *testing.T) {
	p := NewPlayer()
	clip := testClip("run", true, ms(100), ms(100), ms(100))
	_ = p.Play(clip, NoCompletion)
	p.Update(ms(100))
	p.Update(ms(40))

	if err := p.Play(clip, "again"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := p.Play(clip, "latest"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if p.Index() != 1 {
		t.Fatalf("index reset on replay: got %d, want 1", p.Index())
	}
	if p.Elapsed() != ms(40) {
		t.Fatalf("elapsed reset on replay: got %v, want 40ms", p.Elapsed())
	}
	if p.Pending() != "latest" {
		t.Fatalf("pending completion not replaced: got %q", p.Pending())
	}
}

func TestPlayerSwitchingClipResets(t *testing.T) {
	p := NewPlayer()
	run := testClip("run", true, ms(100), ms(100))
	idle := testClip("idle", true, ms(100), ms(100))
	_ = p.Play(run, NoCompletion)
	p.Update(ms(100))
	p.Update(ms(30))

	_ = p.Play(idle, NoCompletion)
	if p.Clip() != idle || p.Index() != 0 || p.Elapsed() != 0 {
		t.Fatalf("expected reset on new clip, got clip=%s index=%d elapsed=%v", p.Clip().Name, p.Index(), p.Elapsed())
	}
}

func TestPlayerLoopingWrap(t *testing.T) {
	p := NewPlayer()
	_ = p.Play(testClip("idle", true, ms(100), ms(100), ms(100)), NoCompletion)

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		if c := p.Update(ms(100)); c != NoCompletion {
			t.Fatalf("looping clip fired completion %q", c)
		}
		if p.Index() != w {
			t.Fatalf("after %dms: index %d, want %d", (i+1)*100, p.Index(), w)
		}
	}
	if p.HasFinishedPlaying() {
		t.Fatalf("looping clip reported finished")
	}
}

func TestPlayerNonLoopingClampAndSingleCompletion(t *testing.T) {
	p := NewPlayer()
	_ = p.Play(testClip("land", false, ms(100), ms(100)), "land-idle")

	fired := 0
	for i := 0; i < 20; i++ {
		if c := p.Update(ms(100)); c != NoCompletion {
			if c != "land-idle" {
				t.Fatalf("unexpected completion %q", c)
			}
			fired++
		}
		if p.Index() > 1 {
			t.Fatalf("index ran past last frame: %d", p.Index())
		}
	}
	if fired != 1 {
		t.Fatalf("completion fired %d times, want 1", fired)
	}
	if p.Index() != 1 {
		t.Fatalf("index %d, want 1", p.Index())
	}
	if !p.HasFinishedPlaying() {
		t.Fatalf("expected finished")
	}
	if p.Pending() != NoCompletion {
		t.Fatalf("pending not cleared: %q", p.Pending())
	}
}

func TestPlayerReplayAfterFinishRestarts(t *testing.T) {
	p := NewPlayer()
	clip := testClip("land", false, ms(50))
	_ = p.Play(clip, "done")
	if c := p.Update(ms(50)); c != "done" {
		t.Fatalf("expected completion, got %q", c)
	}

	_ = p.Play(clip, "done")
	if p.HasFinishedPlaying() {
		t.Fatalf("replayed clip still finished")
	}
	if c := p.Update(ms(50)); c != "done" {
		t.Fatalf("expected completion after restart, got %q", c)
	}
}

func TestPlayerZeroDurationFrameAdvances(t *testing.T) {
	p := NewPlayer()
	_ = p.Play(testClip("blink", true, 0, 0, ms(100)), NoCompletion)

	p.Update(0)
	if p.Index() != 1 {
		t.Fatalf("zero duration frame did not advance: %d", p.Index())
	}
	p.Update(0)
	if p.Index() != 2 {
		t.Fatalf("zero duration frame did not advance: %d", p.Index())
	}
}

func TestPlayerDegradesWithoutClip(t *testing.T) {
	cases := []struct {
		name string
		clip *Clip
	}{
		{"no_clip", nil},
		{"empty_clip", &Clip{Name: "empty"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPlayer()
			if c.clip != nil {
				_ = p.Play(c.clip, "never")
			}
			if got := p.Update(ms(500)); got != NoCompletion {
				t.Fatalf("Update fired %q", got)
			}
			if _, ok := p.Draw(math.Vec2{}, false, Opaque); ok {
				t.Fatalf("Draw produced a command")
			}
			if p.HasFinishedPlaying() {
				t.Fatalf("reported finished")
			}
		})
	}
}

func TestPlayerDraw(t *testing.T) {
	p := NewPlayer()
	clip := testClip("run", true, ms(100), ms(100))
	_ = p.Play(clip, NoCompletion)
	p.Update(ms(100))

	at := math.Vec2{X: 12, Y: 34}
	cmd, ok := p.Draw(at, true, Opaque)
	if !ok {
		t.Fatalf("expected draw command")
	}
	if cmd.Source != clip.Frames[1].Source {
		t.Fatalf("source %v, want %v", cmd.Source, clip.Frames[1].Source)
	}
	if cmd.Position != at || !cmd.FlipX || cmd.Tint != Opaque {
		t.Fatalf("unexpected command %+v", cmd)
	}
}
