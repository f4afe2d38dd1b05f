package main

import (
	"strings"
	"testing"
)

const flat = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParseGrid(t *testing.T) {
	g, err := parseGrid(flat)
	if err != nil {
		t.Fatal(err)
	}
	if g[0][0] != 5 || g[0][4] != 7 || g[8][8] != 9 {
		t.Fatalf("parsed grid wrong: %v", g)
	}
	if g.GivenCount() != 30 {
		t.Fatalf("givens = %d, want 30", g.GivenCount())
	}
}

func TestParseGridDotsAndWhitespace(t *testing.T) {
	dotted := strings.ReplaceAll(flat, "0", ".")
	spaced := dotted[:40] + "\n " + dotted[40:]
	g, err := parseGrid(spaced)
	if err != nil {
		t.Fatal(err)
	}
	if g.GivenCount() != 30 {
		t.Fatalf("givens = %d, want 30", g.GivenCount())
	}
}

func TestParseGridErrors(t *testing.T) {
	if _, err := parseGrid("12345"); err == nil {
		t.Fatal("short input accepted")
	}
	if _, err := parseGrid(strings.Repeat("x", 81)); err == nil {
		t.Fatal("invalid characters accepted")
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	g, err := parseGrid(flat)
	if err != nil {
		t.Fatal(err)
	}
	back, err := parseGrid(formatGrid(g))
	if err != nil {
		t.Fatal(err)
	}
	if back != g {
		t.Fatal("format/parse round trip changed the grid")
	}
}
