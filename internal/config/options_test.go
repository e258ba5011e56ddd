package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Gaurav-Gosain/tuios/internal/config"
	"github.com/Gaurav-Gosain/tuios/internal/layout"
)

// =============================================================================
// Options Loading Tests
// =============================================================================

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	opts, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load on a missing file should not error, got %v", err)
	}
	want := layout.DefaultOptions()
	if *opts != *want {
		t.Errorf("expected defaults %+v, got %+v", want, opts)
	}
}

func TestLoadParsesKnownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	body := `
gap = 3
tab_bar_height = 2
title_strip_height = 4
tab_indicator_placement = "within_column"
default_split_ratio = 0.3
promote_on_incompatible_ancestor = true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Gap != 3 {
		t.Errorf("expected gap 3, got %d", opts.Gap)
	}
	if opts.TabBarHeight != 2 {
		t.Errorf("expected tab bar height 2, got %d", opts.TabBarHeight)
	}
	if opts.TitleStripHeight != 4 {
		t.Errorf("expected title strip height 4, got %d", opts.TitleStripHeight)
	}
	if opts.TabIndicatorPlacement != layout.TabIndicatorWithinColumn {
		t.Errorf("expected within_column placement, got %v", opts.TabIndicatorPlacement)
	}
	if opts.DefaultSplitRatio != 0.3 {
		t.Errorf("expected default split ratio 0.3, got %v", opts.DefaultSplitRatio)
	}
	if !opts.PromoteOnIncompatibleAncestor {
		t.Error("expected promote_on_incompatible_ancestor to be true")
	}
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	body := `
gap = 1
some_future_field = "ignored"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load should tolerate unknown fields, got %v", err)
	}
	if opts.Gap != 1 {
		t.Errorf("expected gap 1, got %d", opts.Gap)
	}
}

func TestLoadRejectsNegativeGapViaValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	if err := os.WriteFile(path, []byte("gap = -5\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Gap != 0 {
		t.Errorf("expected Validate to clamp a negative gap to 0, got %d", opts.Gap)
	}
}
