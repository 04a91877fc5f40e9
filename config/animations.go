package config

// Clip names every character sheet must provide.
const (
	ClipIdle        = "idle"
	ClipRun         = "run"
	ClipDash        = "dash"
	ClipJumpAscend  = "jump-ascend"
	ClipJumpDescend = "jump-descend"
	ClipLandRun     = "land-run"
	ClipLandIdle    = "land-idle"
)

// RequiredClips must all be in a character sheet. factory.ResolveCharacterClips
// checks them when a character is created.
var RequiredClips = []string{
	ClipIdle,
	ClipRun,
	ClipDash,
	ClipJumpAscend,
	ClipJumpDescend,
	ClipLandRun,
	ClipLandIdle,
}

// PropClips maps a Tiled prop type to the clip it loops and the sheet that
// holds it.
var PropClips = map[string]struct {
	Sheet string
	Clip  string
}{
	"torch": {Sheet: "props", Clip: "torch"},
}
