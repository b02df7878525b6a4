// Package readme keeps the "Last updated:" line of the repository README
// in step with the latest successful export.
package readme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"time"
)

var lastUpdatedRe = regexp.MustCompile(`(?i)Last updated:[^\r\n]*`)

// Stamp sets the "Last updated: YYYY-MM-DD" line of the file at path to
// the UTC date of at. The first existing line is replaced; otherwise one
// is appended. A missing file is left missing.
func Stamp(path string, at time.Time) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	out := Apply(string(content), at)
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Apply returns content with its "Last updated:" line set to at's date.
func Apply(content string, at time.Time) string {
	line := "Last updated: " + at.UTC().Format(time.DateOnly)
	if loc := lastUpdatedRe.FindStringIndex(content); loc != nil {
		return content[:loc[0]] + line + content[loc[1]:]
	}
	return content + "\n\n" + line + "\n"
}
