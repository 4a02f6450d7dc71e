package md

import "encoding/binary"

// Mask data is stored in 32-bit words regardless of the host word size.
const WordSizeShift = 5
const BitsPerWord = 1 << WordSizeShift
const BytesPerWord = BitsPerWord / 8
const WordBitsMask = BitsPerWord - 1

// MaxWords is the number of words of the largest supported mask.
const MaxWords = 8

// ByteOrder of a word in the byte form of a wire buffer.
var ByteOrder binary.ByteOrder = binary.NativeEndian

// WordIndex returns index of the word holding bit
func WordIndex(bit uint) uint {
	return bit >> WordSizeShift
}

// WordOffset returns position of bit inside its word
func WordOffset(bit uint) uint {
	return bit & WordBitsMask
}

// WordsFor returns number of words needed to hold nbits
func WordsFor(nbits uint) uint {
	return (nbits + BitsPerWord - 1) >> WordSizeShift
}
