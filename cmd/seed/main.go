package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"tourly/internal/bookings"
	"tourly/internal/catalog"
	"tourly/internal/contacts"
	"tourly/internal/pricing"
	"tourly/internal/shared/config"
	"tourly/internal/shared/constants"
	"tourly/internal/shared/database"
	"tourly/pkg/cache"
)

type Seeder struct {
	db       *database.DB
	bookings bookings.Repository
	contacts contacts.Repository
	catalog  *catalog.Catalog
	rnd      *rand.Rand
}

var guests = []struct {
	name, email, phone string
	lang               catalog.Language
}{
	{"Sara Al-Harbi", "sara@example.com", "+966501234567", catalog.LanguageEN},
	{"James Miller", "james.miller@example.com", "+447700900123", catalog.LanguageEN},
	{"نورة القحطاني", "noura@example.com", "+966551112233", catalog.LanguageAR},
	{"Omar Haddad", "omar.h@example.com", "+971501234567", catalog.LanguageEN},
	{"عبدالله الشهري", "abdullah@example.com", "+966509998877", catalog.LanguageAR},
	{"Lena Schmidt", "lena.schmidt@example.com", "+4915112345678", catalog.LanguageEN},
	{"ريم العتيبي", "reem@example.com", "+966532221100", catalog.LanguageAR},
	{"Yuki Tanaka", "yuki@example.com", "+819012345678", catalog.LanguageEN},
}

var messages = map[catalog.Language][]string{
	catalog.LanguageEN: {
		"Do you offer airport pickup for the AlUla tour?",
		"Is the group package available on weekends in December?",
		"Can we bring children under 10 on the desert safari?",
	},
	catalog.LanguageAR: {
		"هل تتوفر جولات خاصة للعائلات؟",
		"أرغب في معرفة تفاصيل الباقة الجماعية.",
	},
}

func main() {
	_ = godotenv.Load()

	fmt.Println("Starting Tourly database seeder...")

	cfg := config.Load()

	ctx := context.Background()
	db, err := database.InitDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{
		db:      db,
		catalog: catalog.Default(),
		rnd:     rand.New(rand.NewSource(42)),
	}
	if db.MongoDB != nil {
		seeder.bookings = bookings.NewMongoRepository(db.MongoDB)
		seeder.contacts = contacts.NewMongoRepository(db.MongoDB)
	} else {
		seeder.bookings = bookings.NewRepository(db.PostgreSQL)
		seeder.contacts = contacts.NewRepository(db.PostgreSQL)
	}

	fmt.Printf("\nCleaning %s store...\n", db.StoreName())
	if err := seeder.Clean(ctx); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("\nSeeding...")
	nBookings, err := seeder.SeedBookings(ctx, 24)
	if err != nil {
		log.Fatalf("Failed to seed bookings: %v", err)
	}
	nContacts, err := seeder.SeedContacts(ctx)
	if err != nil {
		log.Fatalf("Failed to seed contacts: %v", err)
	}

	if err := seeder.FlushCache(ctx); err != nil {
		log.Printf("Warning: failed to flush cached lists: %v", err)
	}

	fmt.Printf("\nSeeding completed: %d bookings, %d contacts\n", nBookings, nContacts)
}

// FlushCache drops cached booking and contact lists so the dashboard does not
// serve rows from before the reseed
func (s *Seeder) FlushCache(ctx context.Context) error {
	if s.db.Redis == nil {
		return nil
	}
	svc := cache.NewService(s.db.Redis)
	for _, pattern := range constants.GetSeedInvalidationPatterns() {
		if err := svc.DeletePattern(ctx, pattern); err != nil {
			return err
		}
	}
	return nil
}

// Clean empties the bookings and contacts collections
func (s *Seeder) Clean(ctx context.Context) error {
	if s.db.MongoDB != nil {
		for _, name := range []string{bookings.CollectionName, contacts.CollectionName} {
			if _, err := s.db.MongoDB.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
				return fmt.Errorf("failed to clean collection %s: %w", name, err)
			}
		}
		return nil
	}

	for _, table := range []string{"bookings", "contacts"} {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := s.db.PostgreSQL.WithContext(ctx).Exec(fmt.Sprintf("TRUNCATE TABLE %s", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return nil
}

// SeedBookings books random packages of the catalog in the guest's language,
// priced the same way the site prices them
func (s *Seeder) SeedBookings(ctx context.Context, count int) (int, error) {
	statuses := []bookings.Status{bookings.StatusPending, bookings.StatusPending, bookings.StatusConfirmed, bookings.StatusCancelled}
	now := time.Now().UTC()

	for i := 0; i < count; i++ {
		guest := guests[s.rnd.Intn(len(guests))]
		trips := s.catalog.List(guest.lang)
		if len(trips) == 0 {
			continue
		}
		trip := trips[s.rnd.Intn(len(trips))]
		tier := trip.Pricing[s.rnd.Intn(len(trip.Pricing))]

		participants := 1 + s.rnd.Intn(6)
		if tier.TourType == catalog.TourTypeGroup {
			participants = 8 + s.rnd.Intn(8)
		}

		var addOns []string
		if len(trip.AddOns) > 0 && s.rnd.Intn(2) == 0 {
			addOns = append(addOns, trip.AddOns[s.rnd.Intn(len(trip.AddOns))].Name)
		}

		total := pricing.Calculate(&trip, pricing.Selection{
			Package:      tier.Name,
			Participants: participants,
			AddOns:       addOns,
		})

		booking := &bookings.Booking{
			Name:         guest.name,
			Phone:        guest.phone,
			Email:        guest.email,
			Age:          fmt.Sprintf("%d", 20+s.rnd.Intn(40)),
			Date:         now.AddDate(0, 0, 3+s.rnd.Intn(90)).Format(bookings.DateLayout),
			PackageName:  tier.Name,
			Participants: participants,
			AddOns:       addOns,
			TripTitle:    trip.Title,
			Language:     guest.lang,
			TotalPrice:   total,
			Status:       statuses[s.rnd.Intn(len(statuses))],
			CreatedAt:    now.Add(-time.Duration(s.rnd.Intn(30*24)) * time.Hour),
		}
		if err := s.bookings.Create(ctx, booking); err != nil {
			return i, err
		}
		fmt.Printf("  %s booked %s (%s) for %d: %.0f SAR [%s]\n",
			booking.Name, booking.TripTitle, booking.PackageName, booking.Participants, booking.TotalPrice, booking.Status)
	}
	return count, nil
}

func (s *Seeder) SeedContacts(ctx context.Context) (int, error) {
	n := 0
	for i, guest := range guests {
		msgs := messages[guest.lang]
		contact := &contacts.Contact{
			Name:      guest.name,
			Email:     guest.email,
			Phone:     guest.phone,
			Message:   msgs[i%len(msgs)],
			Language:  guest.lang,
			CreatedAt: time.Now().UTC().Add(-time.Duration(i) * 6 * time.Hour),
		}
		if i%3 == 0 {
			contact.Status = contacts.StatusResponded
		}
		if err := s.contacts.Create(ctx, contact); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
