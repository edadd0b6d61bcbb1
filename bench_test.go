package replay_test

import (
	"testing"

	wgreplay "golang.zx2c4.com/wireguard/replay"

	"github.com/seqguard/go-replay"
)

// BenchmarkWireguardFilter is a baseline for BenchmarkDetector.
func BenchmarkWireguardFilter(b *testing.B) {
	var f wgreplay.Filter
	for i := 0; i < b.N; i++ {
		f.ValidateCounter(uint64(i), 1<<63)
	}
}

func TestWireguardFilterAgrees(t *testing.T) {
	// in order delivery with immediate duplicates must get the same verdicts
	var f wgreplay.Filter
	d := replay.NewDefault(1<<32, 2048)
	for i := uint64(0); i < 5000; i++ {
		_, err := d.CheckAndAccept(i)
		if f.ValidateCounter(i, 1<<32) != (err == nil) {
			t.Fatalf("verdicts differ for %d", i)
		}
		_, err = d.CheckAndAccept(i)
		if f.ValidateCounter(i, 1<<32) != (err == nil) {
			t.Fatalf("verdicts differ for duplicate %d", i)
		}
	}
}
