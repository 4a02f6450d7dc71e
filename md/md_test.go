package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordLayout(t *testing.T) {
	assert.EqualValues(t, 32, BitsPerWord)
	assert.EqualValues(t, 4, BytesPerWord)

	assert.EqualValues(t, 0, WordIndex(0))
	assert.EqualValues(t, 0, WordIndex(31))
	assert.EqualValues(t, 1, WordIndex(32))
	assert.EqualValues(t, 7, WordIndex(254))

	assert.EqualValues(t, 0, WordOffset(32))
	assert.EqualValues(t, 30, WordOffset(254))

	assert.EqualValues(t, 1, WordsFor(32))
	assert.EqualValues(t, 8, WordsFor(255))
	assert.EqualValues(t, MaxWords, WordsFor(256))
}
