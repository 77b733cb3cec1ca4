package gameid

import "testing"

func TestGenerateProducesValidIDs(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := Generate()
		if err := Validate(id); err != nil {
			t.Fatalf("generated invalid ID %q: %v", id, err)
		}
	}
}

func TestGenerateIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := Generate()
		if seen[id] {
			t.Fatalf("duplicate ID generated: %q", id)
		}
		seen[id] = true
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"too short", "abc", true},
		{"too long", "0123456789abcdefghjkmnpqrstvwxyz", true},
		{"bad first char", "zaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"invalid character", "0aaaaaaaaaaaaaaaaaaaaaaaal", true},
		{"valid", "0aaaaaaaaaaaaaaaaaaaaaaaaa", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.id)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for %q", tc.id)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tc.id, err)
			}
		})
	}
}
