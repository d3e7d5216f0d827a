// Package mem provides byte-slice helpers shared by the sponge code.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i in dst. It panics if src is shorter than dst.
func XORInPlace(dst, src []byte) {
	for i, s := range src[:len(dst)] {
		dst[i] ^= s
	}
}
