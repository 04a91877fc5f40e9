package systems

import (
	"strings"
	"testing"

	"github.com/automoto/dashrunner/components"
)

func TestDebugLines(t *testing.T) {
	r := newRig(t)
	r.step()

	input := &components.InputData{LastInputMethod: components.InputGamepad}
	lines := debugLines(&r.m, &components.AnimationData{Player: r.anim}, &components.ObjectData{Object: r.body}, input)
	text := strings.Join(lines, "\n")

	for _, want := range []string{"state Idle", "clip idle", "input gamepad"} {
		if !strings.Contains(text, want) {
			t.Errorf("overlay missing %q:\n%s", want, text)
		}
	}
}
