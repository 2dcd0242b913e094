package itinerary

import (
	"fmt"
	"strings"

	"github.com/voyplan/go-trip-planner/internal/types"
)

// ExtractPOIs recovers the POI markers embedded in a generated plan, rewrites
// every matched tag with a stable id (legacy tags also gain their resolved
// icon, so annotated text always carries icons) and drops later duplicates by
// case-insensitive name.
//
// Ids are assigned densely in document order before deduplication, so the
// surviving list may have gaps. Every matched tag is rewritten even when its
// record is later dropped as a duplicate.
//
// Known limitation: rewritten id-bearing tags match neither dialect, so
// running extraction again on already-annotated text finds no markers.
func ExtractPOIs(plan string) ([]types.POI, string) {
	markers := scanMarkers(plan)
	if len(markers) == 0 {
		return nil, plan
	}

	lines := strings.Split(plan, "\n")

	var annotated strings.Builder
	annotated.Grow(len(plan) + len(markers)*16)

	pois := make([]types.POI, 0, len(markers))
	consumed := 0
	for i, m := range markers {
		id := i + 1
		icon := m.Icon
		if icon == "" {
			icon = fallbackIcon(m.Name, m.Type)
		}
		pois = append(pois, buildPOI(id, m, icon, lines))

		// Each rewrite consumes the matched byte range, so identical tags
		// appearing several times are each replaced exactly once.
		annotated.WriteString(plan[consumed:m.Start])
		fmt.Fprintf(&annotated, `<poi id="%d" type="%s" name="%s" icon="%s">%s</poi>`,
			id, m.Type, m.Name, icon, m.Keyword)
		consumed = m.End
	}
	annotated.WriteString(plan[consumed:])

	return dedupePOIs(pois), annotated.String()
}

// buildPOI fills the positional context for one marker: the first source line
// containing its keyword, defaulting to the keyword itself.
func buildPOI(id int, m rawMarker, icon string, lines []string) types.POI {
	line := m.Keyword
	lineIndex := 0
	for i, l := range lines {
		if strings.Contains(l, m.Keyword) {
			line = l
			lineIndex = i
			break
		}
	}
	return types.POI{
		ID:        id,
		Name:      m.Name,
		Type:      m.Type,
		Keyword:   m.Keyword,
		Line:      line,
		LineIndex: lineIndex,
		Context:   line,
		Icon:      icon,
	}
}

// dedupePOIs keeps the first record for each case-insensitive name. The kept
// record's data wins outright; nothing is merged from later duplicates.
func dedupePOIs(pois []types.POI) []types.POI {
	seen := make(map[string]struct{}, len(pois))
	unique := pois[:0]
	for _, poi := range pois {
		key := strings.ToLower(poi.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, poi)
	}
	return unique
}
