//go:build audio_stub

package audio

import "errors"

func newBackend() (backend, error) {
	return nil, errors.New("built without audio")
}
