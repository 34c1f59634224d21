package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tourly/internal/bookings"
	"tourly/internal/contacts"
)

type checkConstraint struct {
	model interface{}
	table string
	name  string
	expr  string
}

func quoted[T ~string](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, "'"+string(v)+"'")
	}
	return strings.Join(parts, ", ")
}

func checkConstraints() []checkConstraint {
	return []checkConstraint{
		{&bookings.Booking{}, "bookings", "chk_bookings_status", "status IN (" + quoted(bookings.AllStatuses()) + ")"},
		{&bookings.Booking{}, "bookings", "chk_bookings_participants", "participants >= 1"},
		{&bookings.Booking{}, "bookings", "chk_bookings_total_price", "total_price >= 0"},
		{&bookings.Booking{}, "bookings", "chk_bookings_language", "language IN ('en', 'ar')"},
		{&contacts.Contact{}, "contacts", "chk_contacts_status", "status IN (" + quoted(contacts.AllStatuses()) + ")"},
	}
}

// MigrateConstraints adds the check constraints AutoMigrate cannot express.
// Postgres has no ADD CONSTRAINT IF NOT EXISTS, so existing ones are skipped.
func MigrateConstraints(db *gorm.DB) error {
	for _, c := range checkConstraints() {
		if db.Migrator().HasConstraint(c.model, c.name) {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s)", c.table, c.name, c.expr)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", c.name, err)
		}
	}
	return nil
}
