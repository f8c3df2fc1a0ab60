package grid

import (
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestGrid3(t *testing.T) {
	g := New(0.05, [3]int64{64, 32, 16}, mat.Vec3{2, 5, 10})

	if n := g.Len(); n != 64*32*16 {
		t.Errorf("Expected %d cells, got %d", 64*32*16, n)
	}

	if _, ok := g.PosInt(mat.Vec3{-2, 0, 0}); ok {
		t.Error("Point out of the grid must not convert")
	}
	pos, ok := g.PosInt(mat.Vec3{2.01, 5, 10})
	if !ok {
		t.Fatal("Point in the grid must convert")
	}
	if pos != [3]int64{0, 0, 0} {
		t.Errorf("Expected cell [0 0 0], got %v", pos)
	}
	pos, ok = g.PosInt(mat.Vec3{2 + 1, 5 + 0.75, 10 + 0.25})
	if !ok {
		t.Fatal("Point in the grid must convert")
	}
	if pos != [3]int64{20, 15, 5} {
		t.Errorf("Expected cell [20 15 5], got %v", pos)
	}
	if _, ok := g.PosInt(mat.Vec3{2 + 3.21, 5, 10}); ok {
		t.Error("Point beyond the x extent must not convert")
	}
}

func TestGrid3_Addr(t *testing.T) {
	g := New(1, [3]int64{4, 5, 6}, mat.Vec3{0, 0, 0})

	// Row-major, x fastest, every in-bounds cell distinct.
	seen := make([]bool, g.Len())
	var expected int64
	for z := int64(0); z < 6; z++ {
		for y := int64(0); y < 5; y++ {
			for x := int64(0); x < 4; x++ {
				addr := g.Addr(x, y, z)
				if addr != expected {
					t.Fatalf("Expected address %d for (%d,%d,%d), got %d", expected, x, y, z, addr)
				}
				if seen[addr] {
					t.Fatalf("Address %d assigned twice", addr)
				}
				seen[addr] = true
				expected++
			}
		}
	}
}

func TestGrid3_Clamp(t *testing.T) {
	g := New(1, [3]int64{10, 10, 10}, mat.Vec3{0, 0, 0})

	cases := map[[3]int64][3]int64{
		{5, 5, 5}:    {5, 5, 5},
		{-1, 5, 5}:   {0, 5, 5},
		{10, 10, 10}: {9, 9, 9},
		{-3, 12, 9}:  {0, 9, 9},
	}
	for in, expected := range cases {
		if out := g.Clamp(in); out != expected {
			t.Errorf("Clamp(%v) must be %v, got %v", in, expected, out)
		}
	}

	// A point exactly on the maximum corner converts one past the last
	// cell and must clamp back in.
	pos := g.Clamp(g.Pos(g.Max()))
	if !g.InBounds(pos[0], pos[1], pos[2]) {
		t.Errorf("Clamped maximum corner must be in bounds, got %v", pos)
	}
}

func TestGrid3_Bounds(t *testing.T) {
	g := New(0.25, [3]int64{40, 40, 10}, mat.Vec3{-5, -5, 0})

	if min := g.Min(); min != (mat.Vec3{-5, -5, 0}) {
		t.Errorf("Expected min corner {-5 -5 0}, got %v", min)
	}
	if max := g.Max(); max != (mat.Vec3{5, 5, 2.5}) {
		t.Errorf("Expected max corner {5 5 2.5}, got %v", max)
	}
	if c := g.Center(0, 0, 0); c != (mat.Vec3{-4.875, -4.875, 0.125}) {
		t.Errorf("Expected center of first cell {-4.875 -4.875 0.125}, got %v", c)
	}

	// Cell centers convert back to their own cell.
	for _, p := range [][3]int64{{0, 0, 0}, {39, 39, 9}, {20, 13, 5}} {
		pos, ok := g.PosInt(g.Center(p[0], p[1], p[2]))
		if !ok || pos != p {
			t.Errorf("Center of %v converted to %v", p, pos)
		}
	}
}
