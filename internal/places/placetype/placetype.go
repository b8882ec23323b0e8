// Package placetype holds the closed vocabulary of place categories shared by
// request construction on the client and exclusion filtering on the server.
package placetype

// PlaceType is a Google Places (v1) primary type token.
type PlaceType string

const (
	Bar        PlaceType = "bar"
	Cafe       PlaceType = "cafe"
	NightClub  PlaceType = "night_club"
	University PlaceType = "university"
	Gym        PlaceType = "gym"
	Restaurant PlaceType = "restaurant"

	Supermarket      PlaceType = "supermarket"
	Florist          PlaceType = "florist"
	Physiotherapist  PlaceType = "physiotherapist"
	HairCare         PlaceType = "hair_care"
	ConvenienceStore PlaceType = "convenience_store"
	MealTakeaway     PlaceType = "meal_takeaway"
	MealDelivery     PlaceType = "meal_delivery"
	Bakery           PlaceType = "bakery"
	SportsComplex    PlaceType = "sports_complex"
)

// excluded never makes sense for a meeting place; the server sends it on
// every nearby search regardless of what the caller asked for.
var excluded = []PlaceType{
	Supermarket,
	Florist,
	Physiotherapist,
	HairCare,
	ConvenienceStore,
	MealTakeaway,
	MealDelivery,
	Bakery,
	SportsComplex,
}

var known = map[PlaceType]struct{}{
	Bar: {}, Cafe: {}, NightClub: {}, University: {}, Gym: {}, Restaurant: {},
	Supermarket: {}, Florist: {}, Physiotherapist: {}, HairCare: {},
	ConvenienceStore: {}, MealTakeaway: {}, MealDelivery: {}, Bakery: {}, SportsComplex: {},
}

// Excluded returns the fixed exclusion list in wire order.
func Excluded() []PlaceType {
	out := make([]PlaceType, len(excluded))
	copy(out, excluded)
	return out
}

// IsExcluded reports whether t is on the exclusion list.
func IsExcluded(t PlaceType) bool {
	for _, e := range excluded {
		if e == t {
			return true
		}
	}
	return false
}

// Parse returns the PlaceType for s if it belongs to the vocabulary.
func Parse(s string) (PlaceType, bool) {
	t := PlaceType(s)
	_, ok := known[t]
	return t, ok
}

// IsKnown reports whether s belongs to the vocabulary.
func IsKnown(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Strings converts types to their wire tokens.
func Strings(types []PlaceType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
