package similarity

import "testing"

func BenchmarkScore(b *testing.B) {
	answer := Normalize("To get to the other side")
	guess := Normalize("to get to the other side!!")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Score(guess, answer)
	}
}

func BenchmarkNormalize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Normalize("  Ｔｏ get to the OTHER side, café!  ")
	}
}
