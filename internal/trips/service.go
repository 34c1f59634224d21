package trips

import (
	"context"
	"log/slog"

	"tourly/internal/catalog"
	"tourly/internal/pricing"
	"tourly/internal/shared/constants"
	"tourly/pkg/cache"
	"tourly/pkg/logger"
)

const Currency = "SAR"

type Service interface {
	List(ctx context.Context, lang catalog.Language) ([]catalog.TripSummary, error)
	Get(lang catalog.Language, id int) (*catalog.Trip, error)
	Packages(lang catalog.Language, id int, tourType catalog.TourType) (*PackagesResponse, error)
	Quote(lang catalog.Language, id int, draft pricing.Draft) (*QuoteResponse, error)
	ToggleAddOn(lang catalog.Language, id int, selected []string, name string) ([]string, error)
}

type service struct {
	catalog *catalog.Catalog
	cache   cache.Service
	log     *logger.Logger
}

// NewService serves the static catalog. cacheService may be nil.
func NewService(c *catalog.Catalog, cacheService cache.Service) Service {
	return &service{
		catalog: c,
		cache:   cacheService,
		log:     logger.GetDefault(),
	}
}

func (s *service) List(ctx context.Context, lang catalog.Language) ([]catalog.TripSummary, error) {
	build := func() []catalog.TripSummary {
		list := s.catalog.List(lang)
		out := make([]catalog.TripSummary, 0, len(list))
		for i := range list {
			out = append(out, list[i].Summary())
		}
		return out
	}
	if s.cache == nil {
		return build(), nil
	}

	var summaries []catalog.TripSummary
	err := s.cache.GetOrSet(ctx, constants.BuildTripsListKey(string(lang)), constants.TTL_TRIPS_LIST, func() (interface{}, error) {
		return build(), nil
	}, &summaries)
	if err != nil {
		s.log.WarnContext(ctx, "Trips cache unavailable", slog.Any("error", err))
		return build(), nil
	}
	return summaries, nil
}

func (s *service) Get(lang catalog.Language, id int) (*catalog.Trip, error) {
	return s.catalog.ByID(lang, id)
}

func (s *service) Packages(lang catalog.Language, id int, tourType catalog.TourType) (*PackagesResponse, error) {
	trip, err := s.catalog.ByID(lang, id)
	if err != nil {
		return nil, err
	}
	if tourType != "" && !tourType.IsValid() {
		return nil, pricing.ErrInvalidTourType
	}
	return &PackagesResponse{
		TripID:   trip.ID,
		TourType: tourType,
		Packages: trip.TiersFor(tourType),
	}, nil
}

func (s *service) Quote(lang catalog.Language, id int, draft pricing.Draft) (*QuoteResponse, error) {
	trip, err := s.catalog.ByID(lang, id)
	if err != nil {
		return nil, err
	}
	if err := draft.Validate(trip); err != nil {
		return nil, err
	}
	return &QuoteResponse{
		TripID:   trip.ID,
		Currency: Currency,
		Quote:    pricing.QuoteFor(trip, draft.Selection()),
	}, nil
}

func (s *service) ToggleAddOn(lang catalog.Language, id int, selected []string, name string) ([]string, error) {
	trip, err := s.catalog.ByID(lang, id)
	if err != nil {
		return nil, err
	}
	return pricing.ToggleAddOn(trip, selected, name)
}
