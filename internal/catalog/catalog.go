package catalog

import (
	"errors"
	"sort"
)

var ErrTripNotFound = errors.New("trip not found")

// Catalog is the read-only set of trips in every published language
type Catalog struct {
	trips map[Language][]Trip
}

// Default returns the catalog published on the site
func Default() *Catalog {
	return New(map[Language][]Trip{
		LanguageEN: englishTrips,
		LanguageAR: arabicTrips,
	})
}

// New builds a catalog from per-language trip lists. The lists are copied so
// callers cannot mutate the catalog afterwards.
func New(trips map[Language][]Trip) *Catalog {
	c := &Catalog{trips: make(map[Language][]Trip, len(trips))}
	for lang, list := range trips {
		copied := make([]Trip, len(list))
		for i, t := range list {
			copied[i] = t.clone()
		}
		sort.SliceStable(copied, func(i, j int) bool { return copied[i].ID < copied[j].ID })
		c.trips[lang] = copied
	}
	return c
}

// List returns the trips of one language ordered by id
func (c *Catalog) List(lang Language) []Trip {
	list := c.trips[lang]
	out := make([]Trip, len(list))
	for i, t := range list {
		out[i] = t.clone()
	}
	return out
}

// ByID returns a trip in the requested language
func (c *Catalog) ByID(lang Language, id int) (*Trip, error) {
	for _, t := range c.trips[lang] {
		if t.ID == id {
			trip := t.clone()
			return &trip, nil
		}
	}
	return nil, ErrTripNotFound
}

// ByTitle resolves a booking's tripTitle, which is stored in whatever
// language the visitor browsed in
func (c *Catalog) ByTitle(title string) (*Trip, error) {
	for _, lang := range []Language{LanguageEN, LanguageAR} {
		for _, t := range c.trips[lang] {
			if t.Title == title {
				trip := t.clone()
				return &trip, nil
			}
		}
	}
	return nil, ErrTripNotFound
}

func (t Trip) clone() Trip {
	t.Pricing = append([]PricingTier(nil), t.Pricing...)
	t.AddOns = append([]AddOn(nil), t.AddOns...)
	return t
}
