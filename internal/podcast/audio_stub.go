//go:build !cgo

package podcast

// systemOpener is a stub when the cgo audio backend is unavailable.
var systemOpener Opener = func(string, float64) (Backend, error) {
	return nil, ErrAudioUnavailable
}
