package checkout

import (
	"errors"
	"testing"
)

func TestFormValidate(t *testing.T) {
	tests := map[string]struct {
		mutate      func(*Form)
		wantMissing []string
	}{
		"complete form": {
			mutate: func(f *Form) {},
		},
		"single missing field": {
			mutate:      func(f *Form) { f.ZipCode = "" },
			wantMissing: []string{"zipCode"},
		},
		"whitespace counts as missing": {
			mutate:      func(f *Form) { f.CardNumber = "   " },
			wantMissing: []string{"cardNumber"},
		},
		"multiple missing in field order": {
			mutate: func(f *Form) {
				f.FirstName = ""
				f.City = ""
				f.ExpiryDate = ""
			},
			wantMissing: []string{"firstName", "city", "expiryDate"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)

			err := f.Validate()
			if tc.wantMissing == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Missing) != len(tc.wantMissing) {
				t.Fatalf("expected missing %v, got %v", tc.wantMissing, verr.Missing)
			}
			for i := range verr.Missing {
				if verr.Missing[i] != tc.wantMissing[i] {
					t.Fatalf("expected missing %v, got %v", tc.wantMissing, verr.Missing)
				}
			}
		})
	}
}
