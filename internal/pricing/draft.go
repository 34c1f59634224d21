package pricing

import (
	"errors"
	"fmt"

	"tourly/internal/catalog"
)

var (
	ErrUnknownPackage      = errors.New("package is not offered for this trip and tour type")
	ErrUnknownAddOn        = errors.New("add-on is not offered for this trip")
	ErrDuplicateAddOn      = errors.New("add-on selected twice")
	ErrInvalidParticipants = errors.New("participants must be at least 1")
	ErrInvalidTourType     = errors.New("tour type must be private or group")
	ErrVIPExclusive        = errors.New("deselect the VIP experience before choosing other add-ons")
)

// Draft is an open booking dialog
type Draft struct {
	Name         string           `json:"name"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	Age          string           `json:"age"`
	Date         string           `json:"date"`
	TourType     catalog.TourType `json:"tourType"`
	Package      string           `json:"package"`
	Participants int              `json:"participants"`
	AddOns       []string         `json:"addOns"`
}

func (d Draft) Selection() Selection {
	return Selection{
		Package:      d.Package,
		Participants: d.Participants,
		AddOns:       d.AddOns,
	}
}

// Validate checks the draft against the trip it is being booked on
func (d Draft) Validate(trip *catalog.Trip) error {
	if d.TourType != "" && !d.TourType.IsValid() {
		return ErrInvalidTourType
	}
	if d.Participants < 1 {
		return ErrInvalidParticipants
	}

	offered := false
	for _, tier := range trip.TiersFor(d.TourType) {
		if tier.Name == d.Package {
			offered = true
			break
		}
	}
	if !offered {
		return fmt.Errorf("%w: %q", ErrUnknownPackage, d.Package)
	}

	seen := make(map[string]bool, len(d.AddOns))
	for _, name := range d.AddOns {
		if _, ok := trip.AddOn(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAddOn, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateAddOn, name)
		}
		seen[name] = true
	}
	return nil
}

// ToggleAddOn applies a click on an add-on checkbox. Selecting VIP replaces
// the whole selection; while VIP is selected nothing else can be added.
// Clicking a selected add-on removes it. The input slice is not modified.
func ToggleAddOn(trip *catalog.Trip, selected []string, name string) ([]string, error) {
	current := append([]string(nil), selected...)

	if _, ok := trip.AddOn(name); !ok {
		return current, fmt.Errorf("%w: %q", ErrUnknownAddOn, name)
	}

	for i, s := range current {
		if s == name {
			return append(current[:i], current[i+1:]...), nil
		}
	}

	if IsVIP(name) {
		return []string{name}, nil
	}

	for _, s := range current {
		if IsVIP(s) {
			return current, ErrVIPExclusive
		}
	}

	return append(current, name), nil
}
