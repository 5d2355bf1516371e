package bitvec

import (
	"errors"
	"testing"
)

func TestVector_SetTest(t *testing.T) {
	v := New(100)

	t.Run("Fresh vector is empty", func(t *testing.T) {
		if v.Count() != 0 {
			t.Errorf("Expected 0 bits set, got %d", v.Count())
		}
		if v.Test(42) {
			t.Error("Expected bit 42 to be clear")
		}
	})

	t.Run("Set and test", func(t *testing.T) {
		v.Set(0)
		v.Set(42)
		v.Set(99)

		for _, i := range []uint64{0, 42, 99} {
			if !v.Test(i) {
				t.Errorf("Expected bit %d to be set", i)
			}
		}
		if v.Test(43) {
			t.Error("Expected bit 43 to be clear")
		}
		if v.Count() != 3 {
			t.Errorf("Expected 3 bits set, got %d", v.Count())
		}
	})

	t.Run("Set is idempotent", func(t *testing.T) {
		v.Set(42)
		if v.Count() != 3 {
			t.Errorf("Expected 3 bits set after duplicate, got %d", v.Count())
		}
	})

	t.Run("ClearAll", func(t *testing.T) {
		v.ClearAll()
		if v.Count() != 0 {
			t.Errorf("Expected 0 bits after clear, got %d", v.Count())
		}
		if v.Len() != 100 {
			t.Errorf("Expected length 100 after clear, got %d", v.Len())
		}
	})
}

func TestVector_Sizes(t *testing.T) {
	cases := []struct {
		bits  uint64
		bytes uint64
	}{
		{1, 1},
		{8, 1},
		{9, 2},
		{9586, 1199},
	}
	for _, c := range cases {
		v := New(c.bits)
		if v.Len() != c.bits {
			t.Errorf("Len: expected %d, got %d", c.bits, v.Len())
		}
		if v.Bytes() != c.bytes {
			t.Errorf("Bytes for %d bits: expected %d, got %d", c.bits, c.bytes, v.Bytes())
		}
	}
}

func TestVector_Union(t *testing.T) {
	a := New(64)
	b := New(64)
	a.Set(1)
	a.Set(2)
	b.Set(2)
	b.Set(3)

	if err := a.UnionWith(b); err != nil {
		t.Fatal(err)
	}
	for _, i := range []uint64{1, 2, 3} {
		if !a.Test(i) {
			t.Errorf("Expected bit %d set after union", i)
		}
	}
	if a.Count() != 3 {
		t.Errorf("Expected 3 bits set, got %d", a.Count())
	}

	t.Run("Length mismatch", func(t *testing.T) {
		c := New(128)
		if err := a.UnionWith(c); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("Expected ErrLengthMismatch, got %v", err)
		}
		if err := a.UnionWith(nil); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("Expected ErrLengthMismatch for nil, got %v", err)
		}
	})
}

func TestVector_CloneEqual(t *testing.T) {
	a := New(32)
	a.Set(5)
	a.Set(17)

	b := a.Clone()
	if !a.Equal(b) {
		t.Error("Expected clone to equal source")
	}

	b.Set(9)
	if a.Equal(b) {
		t.Error("Expected divergence after mutating clone")
	}
	if a.Test(9) {
		t.Error("Expected source untouched by clone mutation")
	}

	if a.Equal(New(64)) {
		t.Error("Expected vectors of different lengths to differ")
	}
}
