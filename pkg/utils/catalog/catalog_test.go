package catalog

import "testing"

func TestValidBudget(t *testing.T) {
	for _, opt := range BudgetOptions {
		if !ValidBudget(opt.Value) {
			t.Errorf("ValidBudget(%q) = false, want true", opt.Value)
		}
	}
	for _, v := range []string{"", "lt_5000", "7000", "beaucoup"} {
		if ValidBudget(v) {
			t.Errorf("ValidBudget(%q) = true, want false", v)
		}
	}
}

func TestBudgetLabel(t *testing.T) {
	if got := BudgetLabel("lt_500"); got != "Moins de 500€" {
		t.Errorf("BudgetLabel(lt_500) = %q", got)
	}
	if got := BudgetLabel("unknown"); got != "-" {
		t.Errorf("BudgetLabel(unknown) = %q, want -", got)
	}
}

func TestExpandPaintShorthand(t *testing.T) {
	got := ExpandPaintShorthand([]string{"intérieure", "Plomberie", "extérieure"})
	want := []string{"Peinture intérieure", "Plomberie", "Peinture extérieure"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExpandPaintShorthand[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
