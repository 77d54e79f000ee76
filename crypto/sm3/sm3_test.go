package sm3

import (
	"bytes"
	"math/bits"
	"math/rand"
	"testing"

	gmsm3 "github.com/tjfoc/gmsm/sm3"

	"github.com/pagehash/pagehash/testutil"
)

// Tests the published GB/T 32905-2016 vectors. Self-consistency is not
// enough here: the shift form of the round constant table produces a
// self-consistent but wrong digest, and only the standard vectors can
// tell the two apart.
func TestStandardVectors(t *testing.T) {
	tests := []struct {
		msg    []byte
		digest []byte
	}{
		{
			msg:    []byte("abc"),
			digest: testutil.MustDecodeHexString("66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0"),
		},
		{
			msg:    bytes.Repeat([]byte("abcd"), 16),
			digest: testutil.MustDecodeHexString("debe9ff92275b8a138604889c18e5a4d6fdb70e5387e5765293dcba39c0c5732"),
		},
		{
			msg:    nil,
			digest: testutil.MustDecodeHexString("1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b"),
		},
	}

	for i, tt := range tests {
		got := Sum256(tt.msg)
		if !bytes.Equal(got[:], tt.digest) {
			t.Errorf("vector %d: digest mismatch: have %x, want %x", i, got, tt.digest)
		}
	}
}

func TestPadInvariant(t *testing.T) {
	lengths := []int{0, 1, 54, 55, 56, 57, 63, 64, 65, 119, 120, 127, 128, 4095, 4096, 4097}
	for l := 0; l <= 150; l++ {
		lengths = append(lengths, l)
	}

	r := rand.New(rand.NewSource(1))
	for _, l := range lengths {
		msg := make([]byte, l)
		r.Read(msg)

		padded := Pad(msg)
		want := (l + 9 + BlockSize - 1) / BlockSize * BlockSize
		if len(padded) != want {
			t.Fatalf("len %d: padded length %d, want %d", l, len(padded), want)
		}
		if len(padded)%BlockSize != 0 {
			t.Fatalf("len %d: padded length %d not block aligned", l, len(padded))
		}
		if !bytes.Equal(padded[:l], msg) {
			t.Fatalf("len %d: message prefix altered", l)
		}
		if padded[l] != 0x80 {
			t.Fatalf("len %d: marker byte is %#x", l, padded[l])
		}
		for i := l + 1; i < len(padded)-8; i++ {
			if padded[i] != 0 {
				t.Fatalf("len %d: nonzero fill byte at %d", l, i)
			}
		}
		bitlen := uint64(0)
		for _, b := range padded[len(padded)-8:] {
			bitlen = bitlen<<8 | uint64(b)
		}
		if bitlen != uint64(l)*8 {
			t.Fatalf("len %d: trailer decodes to %d bits, want %d", l, bitlen, l*8)
		}
	}
}

func TestDigestWidths(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, l := range []int{0, 3, 64, 300, PageSize} {
		msg := make([]byte, l)
		r.Read(msg)

		full, err := Digest(msg, 256)
		if err != nil {
			t.Fatal(err)
		}
		short, err := Digest(msg, 128)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(short, full[:Size128]) {
			t.Errorf("len %d: 128-bit digest is not a prefix of the 256-bit digest", l)
		}

		s256 := Sum256(msg)
		s128 := Sum128(msg)
		if !bytes.Equal(full, s256[:]) || !bytes.Equal(short, s128[:]) {
			t.Errorf("len %d: Digest disagrees with Sum256/Sum128", l)
		}
	}

	for _, width := range []int{0, 64, 160, 255, 257, 512} {
		if _, err := Digest([]byte("abc"), width); err != ErrInvalidWidth {
			t.Errorf("width %d: have %v, want ErrInvalidWidth", width, err)
		}
	}
}

func TestSumPage(t *testing.T) {
	page := make([]byte, PageSize)
	for i := range page {
		page[i] = byte(i)
	}

	got, err := SumPage(page)
	if err != nil {
		t.Fatal(err)
	}
	want := Sum256(page)
	if got != want {
		t.Errorf("page fast path mismatch: have %x, want %x", got, want)
	}

	if _, err := SumPage(page[:PageSize-1]); err != ErrInvalidLength {
		t.Errorf("short page: have %v, want ErrInvalidLength", err)
	}
	if _, err := SumPage(append(page, 0)); err != ErrInvalidLength {
		t.Errorf("long page: have %v, want ErrInvalidLength", err)
	}
}

func TestDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	msg := make([]byte, PageSize)
	r.Read(msg)

	first := Sum256(msg)
	for i := 0; i < 10; i++ {
		if again := Sum256(msg); again != first {
			t.Fatalf("run %d: digest changed between identical calls", i)
		}
	}
}

// Flipping one input bit should flip about half of the output bits and
// must never leave the digest unchanged.
func TestAvalanche(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	msg := make([]byte, PageSize)

	const trials = 50
	totalDiff := 0
	for i := 0; i < trials; i++ {
		r.Read(msg)
		base := Sum256(msg)

		bit := r.Intn(PageSize * 8)
		msg[bit/8] ^= 1 << (bit % 8)
		flipped := Sum256(msg)
		msg[bit/8] ^= 1 << (bit % 8)

		diff := 0
		for j := range base {
			diff += bits.OnesCount8(base[j] ^ flipped[j])
		}
		if diff == 0 {
			t.Fatalf("trial %d: single-bit flip produced an identical digest", i)
		}
		totalDiff += diff
	}

	mean := float64(totalDiff) / trials
	if mean < 118 || mean > 138 {
		t.Errorf("mean flipped output bits %.1f, want close to 128", mean)
	}
}

// Cross-checks the engine against the tjfoc/gmsm implementation on
// messages straddling every padding case.
func TestCrossValidation(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, l := range []int{0, 1, 31, 55, 56, 57, 63, 64, 65, 100, 255, 1000, PageSize} {
		msg := make([]byte, l)
		r.Read(msg)

		got := Sum256(msg)
		want := gmsm3.Sm3Sum(msg)
		if !bytes.Equal(got[:], want) {
			t.Errorf("len %d: have %x, gmsm says %x", l, got, want)
		}
	}
}

// The two backends must be bit-for-bit interchangeable; on builds
// without the cgo backend this exercises the transparent fallback.
func TestBackendEquivalence(t *testing.T) {
	defer func(prev bool) { UseAccel = prev }(UseAccel)

	r := rand.New(rand.NewSource(6))
	for _, l := range []int{0, 63, 64, 65, 1000, PageSize} {
		msg := make([]byte, l)
		r.Read(msg)

		UseAccel = false
		soft := Sum256(msg)
		UseAccel = true
		accel := Sum256(msg)

		if soft != accel {
			t.Fatalf("len %d: backend mismatch: software %x, accelerated %x", l, soft, accel)
		}
	}
}

func BenchmarkSumPage(b *testing.B) {
	page := make([]byte, PageSize)
	b.SetBytes(PageSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SumPage(page); err != nil {
			b.Fatal(err)
		}
	}
}
