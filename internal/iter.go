// Package internal holds iterator helpers shared by the emulator packages.
package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// IterSeq2MapKeys converts the keys of a dual-return iterator.
func IterSeq2MapKeys[K1 any, K2 any, V any](seq iter.Seq2[K1, V], convert func(K1) K2) iter.Seq2[K2, V] {
	return func(yield func(K2, V) bool) {
		for key, value := range seq {
			if !yield(convert(key), value) {
				return
			}
		}
	}
}
