package field

import "testing"

func BenchmarkMul(b *testing.B) {
	f, _ := NewField(prime61)
	x := f.NewElement(1234567891234567891)
	y := f.NewElement(987654321987654321)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, _ = x.Mul(y)
	}
}

func BenchmarkPow(b *testing.B) {
	f, _ := NewField(prime61)
	x := f.NewElement(1234567891234567891)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Pow(prime61 - 2)
	}
}

func BenchmarkInverse(b *testing.B) {
	f, _ := NewField(prime61)
	x := f.NewElement(1234567891234567891)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Inverse()
	}
}
