package buffer

import "testing"

type conversionBoundary struct {
	grapheme int
	byteOff  int
	runeOff  int
	cellCol  int
}

type conversionFixture struct {
	name            string
	text            string
	boundaries      []conversionBoundary
	invalidByteOffs []int
}

func unicodeConversionFixtures() []conversionFixture {
	return []conversionFixture{
		{
			name: "ascii-single",
			text: "a",
			boundaries: []conversionBoundary{
				{grapheme: 0, byteOff: 0, runeOff: 0, cellCol: 0},
				{grapheme: 1, byteOff: 1, runeOff: 1, cellCol: 1},
			},
		},
		{
			name: "multibyte-utf8",
			text: "\u00e9",
			boundaries: []conversionBoundary{
				{grapheme: 0, byteOff: 0, runeOff: 0, cellCol: 0},
				{grapheme: 1, byteOff: 2, runeOff: 1, cellCol: 1},
			},
			invalidByteOffs: []int{1},
		},
		{
			name: "combining-mark",
			text: "e\u0301",
			boundaries: []conversionBoundary{
				{grapheme: 0, byteOff: 0, runeOff: 0, cellCol: 0},
				{grapheme: 1, byteOff: 3, runeOff: 2, cellCol: 1},
			},
			invalidByteOffs: []int{1, 2},
		},
		{
			name: "zwj-emoji",
			text: "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466",
			boundaries: []conversionBoundary{
				{grapheme: 0, byteOff: 0, runeOff: 0, cellCol: 0},
				{grapheme: 1, byteOff: 25, runeOff: 7, cellCol: 2},
			},
			invalidByteOffs: []int{1, 4, 10, 24},
		},
		{
			name: "wide-and-emoji",
			text: "\u30c6\U0001F642x",
			boundaries: []conversionBoundary{
				{grapheme: 0, byteOff: 0, runeOff: 0, cellCol: 0},
				{grapheme: 1, byteOff: 3, runeOff: 1, cellCol: 2},
				{grapheme: 2, byteOff: 7, runeOff: 2, cellCol: 4},
				{grapheme: 3, byteOff: 8, runeOff: 3, cellCol: 5},
			},
			invalidByteOffs: []int{1, 2, 4, 5, 6},
		},
	}
}

func TestBuffer_UnicodeFixtures_BoundaryRoundTrip(t *testing.T) {
	for _, fx := range unicodeConversionFixtures() {
		t.Run(fx.name, func(t *testing.T) {
			b := New(fx.text)
			for _, bd := range fx.boundaries {
				off, ok := b.ByteOffsetFromGrapheme(bd.grapheme, OffsetError)
				if !ok || off != bd.byteOff {
					t.Fatalf("ByteOffsetFromGrapheme(%d)=(%d,%v), want (%d,true)", bd.grapheme, off, ok, bd.byteOff)
				}
				g, ok := b.GraphemeFromByteOffset(bd.byteOff, OffsetError)
				if !ok || g != bd.grapheme {
					t.Fatalf("GraphemeFromByteOffset(%d)=(%d,%v), want (%d,true)", bd.byteOff, g, ok, bd.grapheme)
				}

				if err := b.SetInsertionPoint(bd.byteOff); err != nil {
					t.Fatalf("SetInsertionPoint(%d): %v", bd.byteOff, err)
				}
				if got := b.GraphemeIndex(); got != bd.grapheme {
					t.Fatalf("GraphemeIndex=%d, want %d", got, bd.grapheme)
				}
				if got := b.RuneOffset(); got != bd.runeOff {
					t.Fatalf("RuneOffset=%d, want %d", got, bd.runeOff)
				}
				if got := b.CellColumn(); got != bd.cellCol {
					t.Fatalf("CellColumn=%d, want %d", got, bd.cellCol)
				}
			}
		})
	}
}

func TestBuffer_UnicodeFixtures_InvalidOffsets(t *testing.T) {
	for _, fx := range unicodeConversionFixtures() {
		t.Run(fx.name, func(t *testing.T) {
			b := New(fx.text)
			for _, off := range fx.invalidByteOffs {
				if _, ok := b.GraphemeFromByteOffset(off, OffsetError); ok {
					t.Fatalf("GraphemeFromByteOffset(%d) succeeded inside a cluster", off)
				}
				if err := b.SetInsertionPoint(off); err == nil {
					t.Fatalf("SetInsertionPoint(%d) succeeded inside a cluster", off)
				}

				g, ok := b.GraphemeFromByteOffset(off, OffsetClamp)
				if !ok {
					t.Fatalf("clamped GraphemeFromByteOffset(%d) failed", off)
				}
				floor, _ := b.ByteOffsetFromGrapheme(g, OffsetError)
				if floor > off {
					t.Fatalf("clamped offset %d rounded up to %d", off, floor)
				}
			}
		})
	}
}

func TestBuffer_ConvertClampModes(t *testing.T) {
	b := New("ab")
	if _, ok := b.ByteOffsetFromGrapheme(3, OffsetError); ok {
		t.Fatalf("expected out-of-range grapheme index to fail")
	}
	if off, ok := b.ByteOffsetFromGrapheme(3, OffsetClamp); !ok || off != 2 {
		t.Fatalf("clamp=(%d,%v), want (2,true)", off, ok)
	}
	if g, ok := b.GraphemeFromByteOffset(-4, OffsetClamp); !ok || g != 0 {
		t.Fatalf("clamp=(%d,%v), want (0,true)", g, ok)
	}
	if _, ok := b.GraphemeFromByteOffset(0, OffsetClampMode(9)); ok {
		t.Fatalf("unknown clamp mode should fail")
	}
	if got := b.CellWidth(); got != 2 {
		t.Fatalf("cell width=%d, want 2", got)
	}
}
