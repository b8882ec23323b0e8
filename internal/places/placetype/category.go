package placetype

// Category is a home-feed entry point that searches a fixed set of types.
type Category struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Types []PlaceType `json:"types"`
}

var categories = []Category{
	{ID: "hightlighted", Title: "Movimentados Agora", Types: []PlaceType{Bar, NightClub}},
	{ID: "favorites", Title: "Locais Favoritos", Types: []PlaceType{Bar, NightClub}},
	{ID: "nightlife", Title: "Bares & Baladas", Types: []PlaceType{Bar, NightClub}},
	{ID: "cafes", Title: "Cafés & Bate-Papo", Types: []PlaceType{Cafe}},
	{ID: "university", Title: "Vida Universitária", Types: []PlaceType{University}},
	{ID: "fitness", Title: "Bem-estar & Movimento", Types: []PlaceType{Gym}},
}

// Categories returns the home-feed categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		c.Types = append([]PlaceType(nil), c.Types...)
		out[i] = c
	}
	return out
}

// CategoryByID looks up a category by its id.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
