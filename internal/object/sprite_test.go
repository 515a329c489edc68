package object

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSpriteMissing(t *testing.T) {
	s := LoadSprite(filepath.Join(t.TempDir(), "nope.txt"))
	if s.Loaded() {
		t.Error("missing file reported as loaded")
	}
}

func TestLoadSpriteEmptyPath(t *testing.T) {
	if LoadSprite("").Loaded() {
		t.Error("empty path reported as loaded")
	}
}

func TestLoadSpriteBlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.txt")
	if err := os.WriteFile(path, []byte("   \n\t\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if LoadSprite(path).Loaded() {
		t.Error("whitespace-only file reported as loaded")
	}
}

func TestLoadSpriteArt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.txt")
	art := " ## \n####\n ## \n"
	if err := os.WriteFile(path, []byte(art), 0o644); err != nil {
		t.Fatal(err)
	}

	s := LoadSprite(path)
	if !s.Loaded() {
		t.Fatal("art file not loaded")
	}
	if got := len(s.cells); got != 8 {
		t.Errorf("cell count = %d, want 8", got)
	}
}

func TestNilSpriteNotLoaded(t *testing.T) {
	var s *Sprite
	if s.Loaded() {
		t.Error("nil sprite reported as loaded")
	}
}
