package dashboard

import (
	"sort"

	"tourly/internal/bookings"
	"tourly/internal/contacts"
)

type BookingCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
}

type ContactCounts struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Responded int `json:"responded"`
}

// FilterOptions are the distinct values offered in the admin filter selects
type FilterOptions struct {
	TripTitles   []string `json:"tripTitles"`
	Packages     []string `json:"packages"`
	Languages    []string `json:"languages"`
	Participants []int    `json:"participants"`
}

type Summary struct {
	Bookings BookingCounts `json:"bookings"`
	Contacts ContactCounts `json:"contacts"`
	Options  FilterOptions `json:"options"`
}

// Summarize computes the dashboard aggregates over the unfiltered lists
func Summarize(bookingList []bookings.Booking, contactList []contacts.Contact) Summary {
	var s Summary
	s.Options = FilterOptions{
		TripTitles:   []string{},
		Packages:     []string{},
		Languages:    []string{},
		Participants: []int{},
	}

	seenTrip := map[string]bool{}
	seenPackage := map[string]bool{}
	seenLanguage := map[string]bool{}
	seenParticipants := map[int]bool{}

	for i := range bookingList {
		b := &bookingList[i]
		s.Bookings.Total++
		switch b.Status {
		case bookings.StatusPending:
			s.Bookings.Pending++
		case bookings.StatusConfirmed:
			s.Bookings.Confirmed++
		case bookings.StatusCancelled:
			s.Bookings.Cancelled++
		}

		if !seenTrip[b.TripTitle] {
			seenTrip[b.TripTitle] = true
			s.Options.TripTitles = append(s.Options.TripTitles, b.TripTitle)
		}
		if !seenPackage[b.PackageName] {
			seenPackage[b.PackageName] = true
			s.Options.Packages = append(s.Options.Packages, b.PackageName)
		}
		if lang := string(b.Language); !seenLanguage[lang] {
			seenLanguage[lang] = true
			s.Options.Languages = append(s.Options.Languages, lang)
		}
		if !seenParticipants[b.Participants] {
			seenParticipants[b.Participants] = true
			s.Options.Participants = append(s.Options.Participants, b.Participants)
		}
	}
	sort.Ints(s.Options.Participants)

	for i := range contactList {
		s.Contacts.Total++
		switch contactList[i].Status {
		case contacts.StatusNew:
			s.Contacts.New++
		case contacts.StatusResponded:
			s.Contacts.Responded++
		}
	}
	return s
}
