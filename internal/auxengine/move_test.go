package auxengine

import (
	"testing"

	"github.com/ChizhovVadim/AuxEngine/common"
	"github.com/google/go-cmp/cmp"
)

func TestMoveRoundTrip(t *testing.T) {
	var tests = []struct {
		name      string
		from, to  int
		promotion Move
	}{
		{"quiet", 12, 28, PromoNone},
		{"promotion to queen", 52, 60, PromoQueen},
		{"promotion to knight", 8, 0, PromoKnight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m = NewMove(tt.from, tt.to, tt.promotion)
			if got := m.From(); got != tt.from {
				t.Errorf("From() = %d, want %d", got, tt.from)
			}
			if got := m.To(); got != tt.to {
				t.Errorf("To() = %d, want %d", got, tt.to)
			}
			if got := m.Promotion(); got != tt.promotion {
				t.Errorf("Promotion() = %d, want %d", got, tt.promotion)
			}
		})
	}
}

func TestMoveRotateIsSelfInverse(t *testing.T) {
	var m = NewMove(12, 28, PromoNone)
	var rotated = m.Rotate()
	if !rotated.Flipped() {
		t.Fatal("Rotate() did not set the flip bit")
	}
	if got := rotated.Canonical(); got != m {
		t.Errorf("Canonical(Rotate(m)) = %v, want %v", got, m)
	}
}

func TestMoveString(t *testing.T) {
	var m = NewMove(common.ParseSquare("e2"), common.ParseSquare("e4"), PromoNone)
	if got := m.String(); got != "e2e4" {
		t.Errorf("String() = %q, want e2e4", got)
	}
	var promo = NewMove(common.ParseSquare("a7"), common.ParseSquare("a8"), PromoQueen)
	if got := promo.String(); got != "a7a8q" {
		t.Errorf("String() = %q, want a7a8q", got)
	}
}

func TestParseUCIMove(t *testing.T) {
	var pos, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	mv, ok := ParseUCIMove(&pos, "e2e4")
	if !ok {
		t.Fatal("ParseUCIMove(e2e4) ok = false")
	}
	if mv.String() != "e2e4" {
		t.Errorf("matched move = %v, want e2e4", mv.String())
	}

	if _, ok := ParseUCIMove(&pos, "e2e5"); ok {
		t.Error("ParseUCIMove(e2e5) ok = true, want false (illegal move)")
	}
}

func TestKeyIsOrderSensitiveAndDeterministic(t *testing.T) {
	var pv = []Move{NewMove(12, 28, PromoNone), NewMove(52, 60, PromoQueen)}
	var k1 = Key(pv)
	var k2 = Key(pv)
	if k1 != k2 {
		t.Errorf("Key() not deterministic: %q != %q", k1, k2)
	}
	var reversed = []Move{pv[1], pv[0]}
	if Key(reversed) == k1 {
		t.Error("Key() should differ when move order differs")
	}
}

func TestEncodePV(t *testing.T) {
	var root, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var e2e4, ok = ParseUCIMove(&root, "e2e4")
	if !ok {
		t.Fatal("failed to parse e2e4")
	}
	var afterE4 common.Position
	if !root.MakeMove(e2e4, &afterE4) {
		t.Fatal("MakeMove(e2e4) failed")
	}
	var e7e5, ok2 = ParseUCIMove(&afterE4, "e7e5")
	if !ok2 {
		t.Fatal("failed to parse e7e5")
	}

	var pv = EncodePV(root, []common.Move{e2e4, e7e5})
	var want = []Move{
		NewMove(common.ParseSquare("e2"), common.ParseSquare("e4"), PromoNone),
		NewMove(common.ParseSquare("e7"), common.ParseSquare("e5"), PromoNone),
	}
	if diff := cmp.Diff(want, pv); diff != "" {
		t.Errorf("EncodePV() mismatch (-want +got):\n%s", diff)
	}
}
