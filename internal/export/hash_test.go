package export

import "testing"

func TestHashPasswordDeterministic(t *testing.T) {
	a := HashPassword("test@example.com", "secret")
	b := HashPassword("test@example.com", "secret")
	if a != b {
		t.Errorf("identical inputs produced different digests: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestHashPasswordNormalizesEmailCase(t *testing.T) {
	upper := HashPassword("A@B.com", "x")
	lower := HashPassword("a@b.com", "x")
	if upper != lower {
		t.Errorf("email casing should normalize to the same digest: %q vs %q", upper, lower)
	}

	padded := HashPassword("  a@b.com  ", "x")
	if padded != lower {
		t.Errorf("email whitespace should be trimmed before hashing")
	}
}

func TestHashPasswordDefault(t *testing.T) {
	implicit := HashPassword("a@b.com", "")
	explicit := HashPassword("a@b.com", DefaultPassword)
	if implicit != explicit {
		t.Errorf("empty password should fall back to the default")
	}

	other := HashPassword("a@b.com", "different")
	if other == implicit {
		t.Errorf("different passwords must not collide")
	}
}
