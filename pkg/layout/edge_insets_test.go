package layout

import (
	"testing"

	"github.com/jcholuj/DesignSystem/pkg/graphics"
)

func TestEdgeInsetsConstructors(t *testing.T) {
	all := EdgeInsetsAll(8)
	if all != (EdgeInsets{Left: 8, Top: 8, Right: 8, Bottom: 8}) {
		t.Errorf("EdgeInsetsAll(8) = %+v", all)
	}

	sym := EdgeInsetsSymmetric(24, 14)
	if sym != (EdgeInsets{Left: 24, Top: 14, Right: 24, Bottom: 14}) {
		t.Errorf("EdgeInsetsSymmetric(24, 14) = %+v", sym)
	}

	only := EdgeInsetsOnly(1, 2, 3, 4)
	if only != (EdgeInsets{Left: 1, Top: 2, Right: 3, Bottom: 4}) {
		t.Errorf("EdgeInsetsOnly(1, 2, 3, 4) = %+v", only)
	}
}

func TestEdgeInsetsTotals(t *testing.T) {
	insets := EdgeInsetsOnly(1, 2, 3, 4)

	if got := insets.Horizontal(); got != 4 {
		t.Errorf("Horizontal = %v, want 4", got)
	}
	if got := insets.Vertical(); got != 6 {
		t.Errorf("Vertical = %v, want 6", got)
	}
	if got := insets.TopLeft(); got != (graphics.Offset{X: 1, Y: 2}) {
		t.Errorf("TopLeft = %+v, want {1 2}", got)
	}
}

func TestEdgeInsetsInflateSize(t *testing.T) {
	got := EdgeInsetsSymmetric(10, 5).InflateSize(graphics.Size{Width: 100, Height: 40})

	if got != (graphics.Size{Width: 120, Height: 50}) {
		t.Errorf("InflateSize = %+v, want {120 50}", got)
	}
}

func TestEdgeInsetsIsZero(t *testing.T) {
	if !(EdgeInsets{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if EdgeInsetsAll(1).IsZero() {
		t.Error("non-zero insets should not report IsZero")
	}
}
