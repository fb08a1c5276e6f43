package activity

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ayoisaiah/monotimer/internal/osutil"
)

// Status is the document written to the status file.
type Status struct {
	UpdatedAt  time.Time    `json:"updated_at"`
	DismissAt  *time.Time   `json:"dismiss_at,omitempty"`
	Attributes Attributes   `json:"attributes"`
	State      ContentState `json:"state"`
}

// StatusFile publishes the activity as a JSON file that status bars and the
// status command can read.
type StatusFile struct {
	now    func() time.Time
	logger *slog.Logger
	path   string
	attrs  Attributes
	mu     sync.Mutex
}

// NewStatusFile returns a publisher that writes to path.
func NewStatusFile(path string, logger *slog.Logger) *StatusFile {
	if logger == nil {
		logger = slog.Default()
	}

	return &StatusFile{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

func (f *StatusFile) Start(attrs Attributes, state ContentState) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.attrs = attrs
	f.write(state, nil)
}

func (f *StatusFile) Update(state ContentState) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.write(state, nil)
}

func (f *StatusFile) End(final *ContentState) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if final == nil {
		err := os.Remove(f.path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			f.logger.Warn(
				"removing status file failed",
				slog.String("path", f.path),
				slog.Any("error", err),
			)
		}

		return
	}

	dismissAt := f.now().Add(DismissAfter)
	f.write(*final, &dismissAt)
}

// write replaces the status file through a rename so readers never see a
// partial document.
func (f *StatusFile) write(state ContentState, dismissAt *time.Time) {
	s := Status{
		Attributes: f.attrs,
		State:      state,
		DismissAt:  dismissAt,
		UpdatedAt:  f.now(),
	}

	err := writeJSON(f.path, s)
	if err != nil {
		f.logger.Warn(
			"writing status file failed",
			slog.String("path", f.path),
			slog.Any("error", err),
		)
	}
}

func writeJSON(path string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return err
	}

	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, b, osutil.FilePermission); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// ReadStatus reads the status file. It returns nil without an error when no
// activity is live: the file is missing or its final state was dismissed.
func ReadStatus(path string, now time.Time) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}

	if s.DismissAt != nil && now.After(*s.DismissAt) {
		return nil, nil
	}

	return &s, nil
}
