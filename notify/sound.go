package notify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/monotimer/internal/apperr"
)

var errInvalidSoundFormat = &apperr.Error{
	Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
}

// Sound is an alert sound read from disk.
type Sound struct {
	path string
	// the speaker is process wide
	mu sync.Mutex
}

func NewSound(path string) *Sound {
	return &Sound{path: path}
}

// Play decodes the file and blocks until it has finished playing.
func (s *Sound) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		return err
	}

	stream, format, err := decode(f, s.path)
	if err != nil {
		_ = f.Close()
		return err
	}

	defer stream.Close()

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return err
	}

	defer speaker.Close()

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done

	speaker.Clear()

	return nil
}

// decode takes ownership of f; closing the returned stream closes it.
func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		return vorbis.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".wav":
		return wav.Decode(f)
	default:
		return nil, beep.Format{}, errInvalidSoundFormat.Fmt(path)
	}
}
