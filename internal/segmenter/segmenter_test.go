package segmenter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_Paragraphs(t *testing.T) {
	text := "First paragraph with enough words.\n\n" +
		"Second paragraph, also fine.\n\n" +
		"Third paragraph closes it out."

	segments := Segment(text)

	require.Len(t, segments, 3)
	assert.Equal(t, "First paragraph with enough words.", segments[0])
	assert.Equal(t, "Second paragraph, also fine.", segments[1])
	assert.Equal(t, "Third paragraph closes it out.", segments[2])
}

func TestSegment_DropsEmptyParagraphs(t *testing.T) {
	text := "One real paragraph.\n\n   \n\nAnother real paragraph.\n\n\t\n\nThird one here as well."

	segments := Segment(text)

	require.Len(t, segments, 3)
	for _, s := range segments {
		assert.NotEmpty(t, strings.TrimSpace(s))
	}
}

// TestSegment_ParagraphPathNeverFallsBack verifies documents with three
// or more paragraphs never take the sentence-split path: sentence
// punctuation inside paragraphs must not split them.
func TestSegment_ParagraphPathNeverFallsBack(t *testing.T) {
	text := "Alpha sentence one. Alpha sentence two.\n\n" +
		"Beta sentence one! Beta sentence two?\n\n" +
		"Gamma closes. Really."

	segments := Segment(text)

	require.Len(t, segments, 3)
	assert.Contains(t, segments[0], "Alpha sentence one. Alpha sentence two.")
}

func TestSegment_SentenceFallback(t *testing.T) {
	// Two paragraphs only - falls back to sentence splitting.
	text := "This is the first long sentence of the document. " +
		"Here comes another long sentence right after it. " +
		"And finally a third sentence finishes the text."

	segments := Segment(text)

	require.Len(t, segments, 3)
	assert.Equal(t, "This is the first long sentence of the document.", segments[0])
}

func TestSegment_FallbackDropsShortFragments(t *testing.T) {
	text := "Yes. No. This fragment is comfortably over twenty characters. Ok."

	segments := Segment(text)

	require.Len(t, segments, 1)
	assert.Equal(t, "This fragment is comfortably over twenty characters.", segments[0])
}

func TestSegment_FallbackCapsAtTen(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, "Sentence number %d has plenty of characters in it. ", i)
	}

	segments := Segment(sb.String())

	assert.Len(t, segments, 10)
}

func TestSegment_Empty(t *testing.T) {
	assert.Empty(t, Segment(""))
	assert.Empty(t, Segment("   \n\n  \t"))
}

func TestSegment_TrailingFragmentWithoutTerminator(t *testing.T) {
	text := "A proper starting sentence ends here. Trailing clause without any terminator at all"

	segments := Segment(text)

	require.Len(t, segments, 2)
	assert.Equal(t, "Trailing clause without any terminator at all", segments[1])
}
