package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stonehall/dungeongen/internal/dungeon"
)

// Artifact file names consumed by the session layer.
const (
	FileTextMap     = "dungeon_text_map.txt"
	FileRecord      = "dungeon_data.json"
	FileDescription = "dungeon_description.txt"
)

// WriteArtifacts writes the three artifacts of a generation result into
// dir, creating it if necessary.
func WriteArtifacts(res *dungeon.Result, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeFile(filepath.Join(dir, FileTextMap), []byte(ASCIIMap(res))); err != nil {
		return err
	}

	data, err := EncodeRecord(res)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := writeFile(filepath.Join(dir, FileRecord), data); err != nil {
		return err
	}

	return writeFile(filepath.Join(dir, FileDescription), []byte(Describe(res)))
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
