package oscillator

import "errors"

// ErrUnknownShape is returned by Generate for a shape it cannot render.
var ErrUnknownShape = errors.New("oscillator: unknown shape")
