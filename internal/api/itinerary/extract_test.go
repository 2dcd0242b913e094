package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPOIs_EndToEndExample(t *testing.T) {
	text := `Visit the <poi type="attraction" name="Eiffel Tower" icon="🗼">Eiffel Tower</poi> then dine at <poi type="restaurant" name="Le Jules Verne" icon="🍽️">Le Jules Verne</poi>.`

	pois, annotated := ExtractPOIs(text)
	require.Len(t, pois, 2)

	assert.Equal(t, 1, pois[0].ID)
	assert.Equal(t, "Eiffel Tower", pois[0].Name)
	assert.Equal(t, 2, pois[1].ID)
	assert.Equal(t, "Le Jules Verne", pois[1].Name)

	want := `Visit the <poi id="1" type="attraction" name="Eiffel Tower" icon="🗼">Eiffel Tower</poi> then dine at <poi id="2" type="restaurant" name="Le Jules Verne" icon="🍽️">Le Jules Verne</poi>.`
	assert.Equal(t, want, annotated)
}

func TestExtractPOIs_DeduplicatesCaseInsensitively(t *testing.T) {
	text := `First the <poi type="attraction" name="Eiffel Tower" icon="🗼">Eiffel Tower</poi>, later the <poi type="attraction" name="EIFFEL TOWER" icon="🗽">tower again</poi>.`

	pois, annotated := ExtractPOIs(text)

	// First occurrence wins; its data is kept outright.
	require.Len(t, pois, 1)
	assert.Equal(t, 1, pois[0].ID)
	assert.Equal(t, "Eiffel Tower", pois[0].Name)
	assert.Equal(t, "🗼", pois[0].Icon)

	// The duplicate's tag is still rewritten in the text.
	assert.Contains(t, annotated, `<poi id="1" type="attraction" name="Eiffel Tower" icon="🗼">Eiffel Tower</poi>`)
	assert.Contains(t, annotated, `<poi id="2" type="attraction" name="EIFFEL TOWER" icon="🗽">tower again</poi>`)
}

func TestExtractPOIs_IDGapsAfterDedup(t *testing.T) {
	text := `<poi type="park" name="Retiro" icon="🌳">Retiro</poi> <poi type="park" name="retiro" icon="🌳">Retiro</poi> <poi type="museum" name="Prado" icon="🏛️">Prado</poi>`

	pois, _ := ExtractPOIs(text)
	require.Len(t, pois, 2)

	// Ids keep their pre-dedup numbering; no renumbering happens.
	assert.Equal(t, 1, pois[0].ID)
	assert.Equal(t, "Retiro", pois[0].Name)
	assert.Equal(t, 3, pois[1].ID)
	assert.Equal(t, "Prado", pois[1].Name)
}

func TestExtractPOIs_IdenticalTagsRewrittenOncePerOccurrence(t *testing.T) {
	tag := `<poi type="museum" name="Louvre Museum" icon="🏛️">Louvre</poi>`
	text := "Morning: " + tag + " Evening: " + tag

	pois, annotated := ExtractPOIs(text)
	require.Len(t, pois, 1)

	want := `Morning: <poi id="1" type="museum" name="Louvre Museum" icon="🏛️">Louvre</poi> Evening: <poi id="2" type="museum" name="Louvre Museum" icon="🏛️">Louvre</poi>`
	assert.Equal(t, want, annotated)
}

func TestExtractPOIs_LegacyTagsGainResolvedIcon(t *testing.T) {
	text := `Visit <poi type="attraction" name="Eiffel Tower">the tower</poi> and <poi type="restaurant" name="Chez Marie">Chez Marie</poi>.`

	pois, annotated := ExtractPOIs(text)
	require.Len(t, pois, 2)

	// Icon resolver output is attached to the record and to the rewritten tag.
	assert.Equal(t, "🗼", pois[0].Icon)
	assert.Equal(t, "🍽️", pois[1].Icon)
	assert.Contains(t, annotated, `<poi id="1" type="attraction" name="Eiffel Tower" icon="🗼">the tower</poi>`)
	assert.Contains(t, annotated, `<poi id="2" type="restaurant" name="Chez Marie" icon="🍽️">Chez Marie</poi>`)
}

func TestExtractPOIs_LineContext(t *testing.T) {
	text := "Day 1: arrival.\nVisit the <poi type=\"museum\" name=\"Prado\" icon=\"🏛️\">Prado</poi> after lunch.\nDay 2: rest."

	pois, _ := ExtractPOIs(text)
	require.Len(t, pois, 1)

	assert.Equal(t, "Visit the <poi type=\"museum\" name=\"Prado\" icon=\"🏛️\">Prado</poi> after lunch.", pois[0].Line)
	assert.Equal(t, 1, pois[0].LineIndex)
	assert.Equal(t, pois[0].Line, pois[0].Context)
}

func TestExtractPOIs_NoMarkers(t *testing.T) {
	text := "No tagged places here."

	pois, annotated := ExtractPOIs(text)
	assert.Empty(t, pois)
	assert.Equal(t, text, annotated)
}

func TestExtractPOIs_AnnotatedTextIsInert(t *testing.T) {
	text := `Visit the <poi type="attraction" name="Eiffel Tower" icon="🗼">Eiffel Tower</poi>.`

	_, annotated := ExtractPOIs(text)

	// Id-bearing tags match neither dialect, so a second pass finds nothing
	// and leaves the text untouched.
	pois, again := ExtractPOIs(annotated)
	assert.Empty(t, pois)
	assert.Equal(t, annotated, again)
}

func TestExtractPOIs_PassesTypeThroughVerbatim(t *testing.T) {
	text := `<poi type="viewpoint" name="Mirador" icon="🌄">Mirador</poi>`

	pois, _ := ExtractPOIs(text)
	require.Len(t, pois, 1)
	assert.Equal(t, "viewpoint", pois[0].Type)
}
