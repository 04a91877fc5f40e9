package animations

import "errors"

var (
	ErrNilClip       = errors.New("animations: nil clip")
	ErrDuplicateClip = errors.New("animations: duplicate clip name")
	ErrDuplicateKey  = errors.New("animations: key already registered")
)
