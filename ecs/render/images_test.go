package render

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestImageCache(t *testing.T) {
	calls := map[string]int{}
	sheet := new(ebiten.Image)
	errMissing := errors.New("missing")

	cache := NewImageCache(func(name string) (*ebiten.Image, error) {
		calls[name]++
		if name == "bird.png" {
			return sheet, nil
		}
		return nil, errMissing
	})

	for range 3 {
		img, err := cache.Load("bird.png")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if img != sheet {
			t.Fatalf("Load returned a different image")
		}
	}
	if calls["bird.png"] != 1 {
		t.Fatalf("loader called %d times, want 1", calls["bird.png"])
	}

	for range 2 {
		if _, err := cache.Load("nope.png"); !errors.Is(err, errMissing) {
			t.Fatalf("expected errMissing, got %v", err)
		}
	}
	if calls["nope.png"] != 2 {
		t.Fatalf("failed loads should be retried, got %d calls", calls["nope.png"])
	}
	if cache.Len() != 1 {
		t.Fatalf("cache holds %d images, want 1", cache.Len())
	}

	if _, err := cache.Load(""); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
