package ffmpeg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// FFmpegPathEnv overrides the ffmpeg executable used for previews.
const FFmpegPathEnv = "STYLESUB_FFMPEG_PATH"

var ErrNotFound = errors.New("ffmpeg not found: install it or set " + FFmpegPathEnv)

var (
	locateOnce sync.Once
	locateErr  error
	locatePath string
)

// FFmpegPath returns the ffmpeg executable, resolved once per process.
func FFmpegPath() (string, error) {
	locateOnce.Do(func() {
		locatePath, locateErr = locate(os.Getenv(FFmpegPathEnv), exec.LookPath)
	})
	return locatePath, locateErr
}

func locate(override string, lookPath func(string) (string, error)) (string, error) {
	if override != "" {
		if !fileExists(override) {
			return "", fmt.Errorf("%s points to missing file %q", FFmpegPathEnv, override)
		}
		return override, nil
	}

	found, err := lookPath("ffmpeg")
	if err != nil {
		return "", ErrNotFound
	}
	return found, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
