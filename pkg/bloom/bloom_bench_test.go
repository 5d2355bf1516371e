package bloom

import (
	"fmt"
	"testing"
)

func BenchmarkFilter_Add_String(b *testing.B) {
	f, _ := New(1_000_000, 0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Add(fmt.Sprintf("key-%d", i))
	}
}

func BenchmarkFilter_Add_Struct(b *testing.B) {
	type event struct {
		Source string
		ID     int
	}
	f, _ := New(1_000_000, 0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Add(event{Source: "bench", ID: i})
	}
}

func BenchmarkFilter_MightContain_Hit(b *testing.B) {
	f, _ := New(1000, 0.01)
	for i := 0; i < 1000; i++ {
		_ = f.Add(fmt.Sprintf("key-%d", i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.MightContain(fmt.Sprintf("key-%d", i%1000))
	}
}

func BenchmarkFilter_MightContain_Miss(b *testing.B) {
	f, _ := New(1000, 0.01)
	for i := 0; i < 1000; i++ {
		_ = f.Add(fmt.Sprintf("key-%d", i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.MightContain(fmt.Sprintf("other-%d", i))
	}
}
