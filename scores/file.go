// Package scores persists survival times as an append-only text file,
// one decimal integer per line.
package scores

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"spaceshooter/game"
)

// DefaultPath is the score file used when none is configured
const DefaultPath = "scores.txt"

// File is a game.ScoreStore backed by a text file
type File struct {
	path   string
	logger *log.Logger
}

// NewFile creates a store at path. logger may be nil.
func NewFile(path string, logger *log.Logger) *File {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &File{path: path, logger: logger}
}

// Path returns the backing file path
func (f *File) Path() string {
	return f.path
}

// Load reads every record, skips malformed lines and returns the top
// records highest first. A missing file is an empty leaderboard.
func (f *File) Load() ([]int, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open score file: %w", err)
	}
	defer file.Close()

	records, err := parse(file, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to read score file %s: %w", f.path, err)
	}
	return game.TopScores(records), nil
}

// Save appends one record. Existing records are never rewritten.
func (f *File) Save(seconds int) error {
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open score file: %w", err)
	}
	if _, err := fmt.Fprintf(file, "%d\n", seconds); err != nil {
		file.Close()
		return fmt.Errorf("failed to append score: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close score file: %w", err)
	}
	f.logger.Debug("score saved", "seconds", seconds, "path", f.path)
	return nil
}

// parse reads one record per line. Lines of any length are accepted; a line
// that is not an integer is skipped without failing the load.
func parse(r io.Reader, logger *log.Logger) ([]int, error) {
	var records []int
	reader := bufio.NewReader(r)
	line := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return records, err
		}
		if raw != "" {
			line++
			if v, ok := parseRecord(raw); ok {
				records = append(records, v)
			} else {
				logger.Debug("skipping malformed score", "line", line, "len", len(raw))
			}
		}
		if err != nil {
			return records, nil
		}
	}
}

func parseRecord(raw string) (int, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, false
	}
	v, err := strconv.Atoi(text)
	return v, err == nil
}
