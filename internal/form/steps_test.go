package form

import "testing"

func TestStepOrder(t *testing.T) {
	want := []StepKey{
		StepCategories, StepName, StepPhone, StepLocalisation,
		StepBudget, StepPhotos, StepDescription, StepReview,
	}
	if len(Steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(Steps), len(want))
	}
	for i, k := range want {
		if Steps[i].Key != k {
			t.Errorf("step %d = %s, want %s", i, Steps[i].Key, k)
		}
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name   string
		key    StepKey
		fields Fields
		want   bool
	}{
		{"categories empty", StepCategories, Fields{}, false},
		{"categories one", StepCategories, Fields{Categories: []string{"intérieure"}}, true},
		{"name too short", StepName, Fields{Name: "J"}, false},
		{"name whitespace padded", StepName, Fields{Name: "  J  "}, false},
		{"name ok", StepName, Fields{Name: "Jo"}, true},
		{"phone nine digits", StepPhone, Fields{Phone: "06 12 34 56 7"}, false},
		{"phone ten digits", StepPhone, Fields{Phone: "06 12 34 56 78"}, true},
		{"localisation postal short", StepLocalisation, Fields{Postal: "2100", Location: "Dijon"}, false},
		{"localisation missing city", StepLocalisation, Fields{Postal: "21000", Location: "  "}, false},
		{"localisation ok", StepLocalisation, Fields{Postal: "21000", Location: "Dijon"}, true},
		{"budget empty", StepBudget, Fields{}, false},
		{"budget unknown value", StepBudget, Fields{Budget: "millions"}, false},
		{"budget ok", StepBudget, Fields{Budget: "1500_3000"}, true},
		{"photos always ready", StepPhotos, Fields{}, true},
		{"description always ready", StepDescription, Fields{}, true},
		{"review always ready", StepReview, Fields{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ready(tt.key, &tt.fields); got != tt.want {
				t.Errorf("ready(%s) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
