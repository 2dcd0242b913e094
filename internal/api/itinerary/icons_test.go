package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackIcon_NameKeyword(t *testing.T) {
	assert.Equal(t, "🗼", fallbackIcon("Eiffel Tower", "attraction"))
	assert.Equal(t, "⛪", fallbackIcon("Notre-Dame Cathedral", "attraction"))
	assert.Equal(t, "☕", fallbackIcon("Cafe de Flore", "restaurant"))
	assert.Equal(t, "🌳", fallbackIcon("Hyde Park", "park"))
	assert.Equal(t, "✈️", fallbackIcon("Heathrow Airport", "transport"))
	assert.Equal(t, "🍦", fallbackIcon("Berthillon Ice Cream", "restaurant"))
}

func TestFallbackIcon_KeywordPriorityIsDeterministic(t *testing.T) {
	// "Tower Bridge" matches both "tower" and "bridge"; "tower" is listed
	// first so it wins, on every call.
	for i := 0; i < 20; i++ {
		assert.Equal(t, "🗼", fallbackIcon("Tower Bridge", "attraction"))
	}
}

func TestFallbackIcon_CaseInsensitiveName(t *testing.T) {
	assert.Equal(t, "🏰", fallbackIcon("BUCKINGHAM PALACE", "attraction"))
}

func TestFallbackIcon_TypeFallback(t *testing.T) {
	assert.Equal(t, "🗽", fallbackIcon("Le Jules Verne... no wait", "attraction"))
	assert.Equal(t, "🍽️", fallbackIcon("Chez Marie", "restaurant"))
	assert.Equal(t, "🏛️", fallbackIcon("Uffizi", "museum"))
	assert.Equal(t, "🚇", fallbackIcon("Gare du Nord... unnamed", "transport"))
}

func TestFallbackIcon_GenericFallback(t *testing.T) {
	assert.Equal(t, "📍", fallbackIcon("Somewhere", "viewpoint"))
	assert.Equal(t, "📍", fallbackIcon("Somewhere", ""))
}
