package universe

import (
	"errors"
	"testing"
)

func TestSeedingFromSequence(t *testing.T) {
	seq := []byte("GATCCAGAT")
	u, err := New(3, 3, seq)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i, base := range seq {
		want := base == 'G' || base == 'C'
		got := u.Cells()[i]
		if got != want {
			t.Errorf("cell %d (base %c) alive=%v, want %v", i, base, got, want)
		}
	}
}

func TestSeedShorterThanGrid(t *testing.T) {
	u, err := New(4, 4, []byte("GG"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(u.Cells()) != 16 {
		t.Fatalf("len(cells) = %d, want 16", len(u.Cells()))
	}
	if u.Population() != 2 {
		t.Fatalf("population = %d, want 2", u.Population())
	}
	for i := 2; i < 16; i++ {
		if u.Cells()[i] {
			t.Errorf("cell %d alive, want dead past seed end", i)
		}
	}
}

func TestSeedLongerThanGrid(t *testing.T) {
	u, err := New(2, 2, []byte("AAAAGGGGGGGG"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(u.Cells()) != 4 {
		t.Fatalf("len(cells) = %d, want 4", len(u.Cells()))
	}
	if u.Population() != 0 {
		t.Fatalf("population = %d, want 0: excess seed must be ignored", u.Population())
	}
}

func TestInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		if _, err := New(dims[0], dims[1], nil); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	u, err := New(5, 5, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, col := range []int{1, 2, 3} {
		if err := u.Toggle(2, col); err != nil {
			t.Fatalf("Toggle: %v", err)
		}
	}

	u.Step()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			_, want := expects[[2]int{row, col}]
			if got := u.Alive(row, col); got != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, got, want)
			}
		}
	}

	u.Step()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			_, want := expects[[2]int{row, col}]
			if got := u.Alive(row, col); got != want {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", row, col, got, want)
			}
		}
	}
}

func TestBlinkerWrapsTorus(t *testing.T) {
	// Horizontal triple at row 1 of a 3x3 torus. Every cell has exactly
	// 2 or 3 live neighbors under wrapping, so the whole board fills.
	u, err := New(3, 3, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, col := range []int{0, 1, 2} {
		if err := u.Toggle(1, col); err != nil {
			t.Fatalf("Toggle: %v", err)
		}
	}

	u.Step()

	if got := u.Population(); got != 9 {
		t.Fatalf("population after step = %d, want 9 (full board under toroidal wrap)", got)
	}
}

func TestEmptyBoardIsFixedPoint(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {10, 10}} {
		u, err := New(dims[0], dims[1], nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		u.Step()
		if u.Population() != 0 {
			t.Errorf("%dx%d all-dead board changed after Step", dims[0], dims[1])
		}
		if len(u.Cells()) != dims[0]*dims[1] {
			t.Errorf("%dx%d board has %d cells after Step", dims[0], dims[1], len(u.Cells()))
		}
	}
}

func TestToggleIsSelfInverse(t *testing.T) {
	u, err := New(4, 5, []byte("GCGCATGCATGCATGCAGCT"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := make([]bool, len(u.Cells()))
	copy(before, u.Cells())

	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			u.Toggle(row, col)
			u.Toggle(row, col)
		}
	}

	for i, alive := range u.Cells() {
		if alive != before[i] {
			t.Fatalf("cell %d changed after double toggle", i)
		}
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	u, err := New(3, 4, []byte("GCGC"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := make([]bool, len(u.Cells()))
	copy(before, u.Cells())

	cases := [][2]int{{3, 0}, {0, 4}, {-1, 0}, {0, -1}, {100, 100}}
	for _, c := range cases {
		if err := u.Toggle(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Toggle(%d,%d) err = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}

	for i, alive := range u.Cells() {
		if alive != before[i] {
			t.Fatalf("cell %d changed by out-of-bounds toggle", i)
		}
	}
}

func TestRandomizeIsDeterministic(t *testing.T) {
	a, _ := New(8, 8, nil)
	b, _ := New(8, 8, nil)
	a.Randomize(42)
	b.Randomize(42)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("same seed produced different boards at cell %d", i)
		}
	}
}
