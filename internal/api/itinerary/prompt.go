package itinerary

import "fmt"

// tripPlanPrompt builds the generation prompt. The POI tag contract here is
// what scanMarkers parses back out: models must wrap every point of interest
// in the current dialect, 5-10 times per plan.
func tripPlanPrompt(destination string, lat, lon float64, startDate, endDate, languageName string) string {
	return fmt.Sprintf(`
Plan a detailed trip to %s (latitude: %f, longitude: %f) from %s to %s.

Please provide a comprehensive itinerary that includes:
1. Day-by-day activities and attractions
2. Local restaurants and food recommendations
3. Transportation tips within the destination
4. Cultural insights and local customs
5. Practical travel tips (weather, what to pack, etc.)
6. Budget-friendly and luxury options where applicable

CRITICAL: For each point of interest (POI) mentioned in your plan, you MUST highlight it using this exact format:
<poi type="attraction" name="Eiffel Tower" icon="🗼">Eiffel Tower</poi>
<poi type="restaurant" name="Le Jules Verne" icon="🍽️">Le Jules Verne restaurant</poi>
<poi type="hotel" name="Hotel Ritz" icon="🏨">Hotel Ritz</poi>
<poi type="museum" name="Louvre Museum" icon="🏛️">Louvre Museum</poi>
<poi type="park" name="Luxembourg Gardens" icon="🌳">Luxembourg Gardens</poi>
<poi type="shopping" name="Champs-Élysées" icon="🛍️">Champs-Élysées shopping district</poi>
<poi type="transport" name="Charles de Gaulle Airport" icon="✈️">Charles de Gaulle Airport</poi>

POI types and suggested icons:
- attraction: landmarks, monuments, towers, bridges, palaces, castles, churches, temples (🗽🗼🏰⛪🛕🕌🕍🏛️⛲)
- restaurant: restaurants, cafes, bars, bistros, pubs (🍽️☕🍺🍕🥐🍦)
- hotel: hotels, hostels, inns, resorts, guesthouses (🏨🏖️🏢🏡)
- museum: museums, galleries, exhibitions (🏛️🖼️)
- park: parks, gardens, zoos, aquariums (🌳🌺🦁🐠🌲🏖️🏞️⛰️)
- shopping: malls, markets, shopping districts, boutiques (🛍️🛒👗🏬)
- transport: airports, train stations, metro stations, ports (✈️🚉🚇🚌🚂🚢🅿️)

IMPORTANT: You MUST include at least 5-10 POIs in your plan, each wrapped in the <poi> tags with appropriate icons. Choose the most relevant emoji for each specific place.

Make the plan engaging, practical, and culturally sensitive. Include specific place names, addresses, and estimated costs where possible.

Please answer in %s and format the response in a clear, readable structure.
`, destination, lat, lon, startDate, endDate, languageName)
}
