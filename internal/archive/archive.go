package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// BackupFile moves an existing file into an "archive" directory beside it,
// suffixing the name with a timestamp. It returns the archived path, or ""
// when there was nothing to back up.
func BackupFile(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("cannot back up directory: %s", path)
	}

	archiveDir := filepath.Join(filepath.Dir(path), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	archivePath := filepath.Join(archiveDir,
		fmt.Sprintf("%s-%s%s", stem, time.Now().Format("20060102-150405"), ext))

	// Same-second collision
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir,
			fmt.Sprintf("%s-%s%s", stem, time.Now().Format("20060102-150405.000000"), ext))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}

	log.Info().Str("from", path).Str("to", archivePath).Msg("Previous output archived")
	return archivePath, nil
}
