package model

import (
	"errors"
	"testing"
)

func TestParseGrid(t *testing.T) {
	grid := mustParse(t, "·0·\n0·0")

	if grid.GetHeight() != 2 || grid.GetWidth() != 3 {
		t.Fatalf("got %dx%d, want 2x3", grid.GetHeight(), grid.GetWidth())
	}

	alive := [][2]int{{0, 1}, {1, 0}, {1, 2}}
	shouldBeAlive := make(map[[2]int]bool)
	for _, coord := range alive {
		shouldBeAlive[coord] = true
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			want := Cell(shouldBeAlive[[2]int{row, col}])
			if got := grid.Get(row, col, Dead); got != want {
				t.Errorf("cell (%d,%d) = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestParseGridTrimsBlankEdges(t *testing.T) {
	grid := mustParse(t, "\n\n·0·\n0·0\n\n")
	if grid.GetHeight() != 2 || grid.GetWidth() != 3 {
		t.Fatalf("got %dx%d, want 2x3", grid.GetHeight(), grid.GetWidth())
	}
}

func TestParseGridMalformedSeeds(t *testing.T) {
	cases := []struct {
		name string
		seed string
	}{
		{"empty", ""},
		{"only blank lines", "\n\n\n"},
		{"ragged rows", "·0·\n0·"},
		{"interior blank line", "·0·\n\n0·0"},
		{"unrecognized character", "·0·\n0x0"},
		{"space in row", "·0·\n0 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseGrid(tc.seed); !errors.Is(err, ErrMalformedSeed) {
				t.Errorf("ParseGrid(%q) = %v, want ErrMalformedSeed", tc.seed, err)
			}
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	seeds := []string{
		"·0·\n0·0",
		"0",
		"·",
		"··0····\n0·0····\n·00····\n·······\n·······\n·······",
	}
	for _, seed := range seeds {
		grid := mustParse(t, seed)
		if got := grid.Render(); got != seed {
			t.Errorf("Render() = %q, want %q", got, seed)
		}

		reparsed, err := ParseGrid(grid.Render())
		if err != nil {
			t.Fatalf("reparsing rendered grid failed: %v", err)
		}
		if !grid.Equal(reparsed) {
			t.Errorf("parse/render round trip changed the grid for seed %q", seed)
		}
	}
}

func TestRenderDeadGrid(t *testing.T) {
	grid, err := NewDeadGrid(2, 3)
	if err != nil {
		t.Fatalf("NewDeadGrid failed: %v", err)
	}
	if got, want := grid.Render(), "···\n···"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
