package shake128_test

import (
	"bytes"
	"testing"

	"github.com/codahale/shake128"
	"pgregory.net/rapid"
)

func TestProperties(t *testing.T) {
	msgs := rapid.SliceOfN(rapid.Byte(), 0, 600)
	lens := rapid.IntRange(0, 700)

	t.Run("deterministic", rapid.MakeCheck(func(t *rapid.T) {
		msg := msgs.Draw(t, "msg")
		n := lens.Draw(t, "n")

		if a, b := shake128.Sum(msg, n), shake128.Sum(msg, n); !bytes.Equal(a, b) {
			t.Fatalf("Sum(%x, %d) = %x then %x", msg, n, a, b)
		}
	}))

	t.Run("exact length", rapid.MakeCheck(func(t *rapid.T) {
		msg := msgs.Draw(t, "msg")
		n := lens.Draw(t, "n")

		if got := len(shake128.Sum(msg, n)); got != n {
			t.Fatalf("len(Sum(_, %d)) = %d", n, got)
		}
	}))

	t.Run("prefix", rapid.MakeCheck(func(t *rapid.T) {
		msg := msgs.Draw(t, "msg")
		n1 := lens.Draw(t, "n1")
		n2 := rapid.IntRange(n1, n1+400).Draw(t, "n2")

		short, long := shake128.Sum(msg, n1), shake128.Sum(msg, n2)
		if !bytes.HasPrefix(long, short) {
			t.Fatalf("Sum(_, %d) = %x is not a prefix of Sum(_, %d) = %x", n1, short, n2, long)
		}
	}))

	t.Run("incremental", rapid.MakeCheck(func(t *rapid.T) {
		msg := msgs.Draw(t, "msg")
		n := lens.Draw(t, "n")
		split := rapid.IntRange(0, len(msg)).Draw(t, "split")

		h := shake128.New()
		_, _ = h.Write(msg[:split])
		_, _ = h.Write(msg[split:])
		out := make([]byte, n)
		_, _ = h.Read(out)

		if want := shake128.Sum(msg, n); !bytes.Equal(out, want) {
			t.Fatalf("Hasher(%x, split=%d) = %x, want = %x", msg, split, out, want)
		}
	}))
}
