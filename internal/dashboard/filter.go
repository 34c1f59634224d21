package dashboard

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"tourly/internal/bookings"
)

// All is the select-box value meaning "no filter"
const All = "all"

// Filter narrows the admin booking list. Empty strings, zero and All leave a
// criterion unset.
type Filter struct {
	Search       string `json:"search,omitempty"`
	TripType     string `json:"tripType,omitempty"`
	Status       string `json:"status,omitempty"`
	Package      string `json:"package,omitempty"`
	DateFrom     string `json:"dateFrom,omitempty"`
	DateTo       string `json:"dateTo,omitempty"`
	Participants int    `json:"participants,omitempty"`
	Language     string `json:"language,omitempty"`
}

type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByDate      SortField = "date"
	SortByName      SortField = "name"
	SortByStatus    SortField = "status"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type Sort struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort is newest submission first
func DefaultSort() Sort {
	return Sort{Field: SortByCreatedAt, Direction: SortDesc}
}

func isSet(v string) bool {
	return v != "" && v != All
}

// IsEmpty reports whether the filter lets every booking through
func (f Filter) IsEmpty() bool {
	return f.Search == "" &&
		!isSet(f.TripType) && !isSet(f.Status) && !isSet(f.Package) &&
		!isSet(f.DateFrom) && !isSet(f.DateTo) &&
		f.Participants == 0 && !isSet(f.Language)
}

// Match applies every set criterion to one booking
func (f Filter) Match(b *bookings.Booking) bool {
	if q := strings.ToLower(f.Search); q != "" {
		if !containsFold(b.Name, q) && !containsFold(b.Email, q) &&
			!containsFold(b.TripTitle, q) && !containsFold(b.Phone, q) {
			return false
		}
	}
	if isSet(f.TripType) && b.TripTitle != f.TripType {
		return false
	}
	if isSet(f.Status) && string(b.Status) != f.Status {
		return false
	}
	if isSet(f.Package) && b.PackageName != f.Package {
		return false
	}
	if isSet(f.Language) && string(b.Language) != f.Language {
		return false
	}
	if f.Participants != 0 && b.Participants != f.Participants {
		return false
	}

	if isSet(f.DateFrom) || isSet(f.DateTo) {
		date, ok := parseDate(b.Date)
		if !ok {
			return false
		}
		if isSet(f.DateFrom) {
			from, ok := parseDate(f.DateFrom)
			if !ok || date.Before(from) {
				return false
			}
		}
		if isSet(f.DateTo) {
			to, ok := parseDate(f.DateTo)
			if !ok || date.After(to) {
				return false
			}
		}
	}
	return true
}

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(bookings.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Normalize replaces unknown fields or directions with the defaults
func (s Sort) Normalize() Sort {
	switch s.Field {
	case SortByCreatedAt, SortByDate, SortByName, SortByStatus:
	default:
		s.Field = SortByCreatedAt
	}
	if s.Direction != SortAsc && s.Direction != SortDesc {
		s.Direction = SortDesc
	}
	return s
}

func (s Sort) less(a, b *bookings.Booking) bool {
	switch s.Field {
	case SortByDate:
		return a.TripDate().Before(b.TripDate())
	case SortByName:
		return a.Name < b.Name
	case SortByStatus:
		return a.Status < b.Status
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

// Apply filters then stably sorts a copy of list. The input is never modified.
func Apply(list []bookings.Booking, f Filter, s Sort) []bookings.Booking {
	s = s.Normalize()

	out := make([]bookings.Booking, 0, len(list))
	for i := range list {
		if f.Match(&list[i]) {
			out = append(out, list[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if s.Direction == SortDesc {
			return s.less(&out[j], &out[i])
		}
		return s.less(&out[i], &out[j])
	})
	return out
}

// ParseQuery reads filter and sort from admin list query parameters. A
// participants value that is not a positive number matches nothing.
func ParseQuery(get func(string) string) (Filter, Sort) {
	f := Filter{
		Search:   get("search"),
		TripType: get("tripType"),
		Status:   get("status"),
		Package:  get("package"),
		DateFrom: get("dateFrom"),
		DateTo:   get("dateTo"),
		Language: get("language"),
	}
	if p := get("participants"); isSet(p) {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			n = -1
		}
		f.Participants = n
	}

	s := Sort{
		Field:     SortField(get("sortField")),
		Direction: SortDirection(strings.ToLower(get("sortDirection"))),
	}
	return f, s.Normalize()
}
