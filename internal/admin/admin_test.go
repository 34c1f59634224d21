package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourly/internal/bookings"
	"tourly/internal/catalog"
	"tourly/internal/contacts"
	"tourly/internal/dashboard"
)

type stubBookings struct {
	bookings.Service
	list  []bookings.Booking
	err   error
	calls int
}

func (s *stubBookings) List(ctx context.Context) ([]bookings.Booking, error) {
	s.calls++
	return s.list, s.err
}

type stubContacts struct {
	contacts.Service
	list []contacts.Contact
	err  error
}

func (s *stubContacts) List(ctx context.Context) ([]contacts.Contact, error) {
	return s.list, s.err
}

var created = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

func sampleBookings() []bookings.Booking {
	return []bookings.Booking{
		{ID: "b1", Name: "Sara", Email: "sara@example.com", TripTitle: "AlUla Heritage Tour", PackageName: "Standard", Date: "2025-05-01", Participants: 2, Language: catalog.LanguageEN, TotalPrice: 200, Status: bookings.StatusPending, CreatedAt: created},
		{ID: "b2", Name: "نورة", Email: "noura@example.com", TripTitle: "جولة العلا التراثية", PackageName: "الباقة القياسية", Date: "2025-05-03", Participants: 4, Language: catalog.LanguageAR, TotalPrice: 400, Status: bookings.StatusConfirmed, CreatedAt: created.Add(time.Hour)},
		{ID: "b3", Name: "Adam", Email: "adam@example.com", TripTitle: "AlUla Heritage Tour", PackageName: "Group Package", Date: "2025-04-20", Participants: 10, Language: catalog.LanguageEN, TotalPrice: 3500, Status: bookings.StatusPending, CreatedAt: created.Add(2 * time.Hour)},
	}
}

func newTestService() (Service, *stubBookings) {
	b := &stubBookings{list: sampleBookings()}
	c := &stubContacts{list: []contacts.Contact{
		{ID: "c1", Name: "Ali", Status: contacts.StatusNew},
		{ID: "c2", Name: "Mona", Status: contacts.StatusResponded},
	}}
	return NewService(b, c, nil, nil), b
}

func bookingIDs(list []bookings.Booking) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.ID)
	}
	return out
}

func TestServiceListBookingsAppliesFilterAndSort(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	list, err := svc.ListBookings(ctx, dashboard.Filter{}, dashboard.DefaultSort())
	require.NoError(t, err)
	assert.Equal(t, []string{"b3", "b2", "b1"}, bookingIDs(list))

	list, err = svc.ListBookings(ctx, dashboard.Filter{Status: "pending"}, dashboard.Sort{Field: dashboard.SortByDate, Direction: dashboard.SortAsc})
	require.NoError(t, err)
	assert.Equal(t, []string{"b3", "b1"}, bookingIDs(list))
}

func TestServiceListBookingsError(t *testing.T) {
	b := &stubBookings{err: errors.New("db down")}
	svc := NewService(b, &stubContacts{}, nil, nil)

	_, err := svc.ListBookings(context.Background(), dashboard.Filter{}, dashboard.DefaultSort())
	assert.Error(t, err)
}

func TestServiceStats(t *testing.T) {
	svc, _ := newTestService()

	summary, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Bookings.Total)
	assert.Equal(t, 2, summary.Bookings.Pending)
	assert.Equal(t, 1, summary.Bookings.Confirmed)
	assert.Equal(t, 2, summary.Contacts.Total)
	assert.Equal(t, 1, summary.Contacts.New)
	assert.Equal(t, []int{2, 4, 10}, summary.Options.Participants)
}

func TestServiceStatsContactsError(t *testing.T) {
	svc := NewService(&stubBookings{}, &stubContacts{err: errors.New("boom")}, nil, nil)

	_, err := svc.Stats(context.Background())
	assert.Error(t, err)
}

func TestServiceExportBookingsPDF(t *testing.T) {
	svc, _ := newTestService()

	data, filename, err := svc.ExportBookingsPDF(context.Background(), dashboard.Filter{Language: "en"}, dashboard.DefaultSort())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.True(t, strings.HasPrefix(filename, "bookings_"))
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
}

func TestExporterEmptyList(t *testing.T) {
	data, err := NewExporter("").BookingsPDF(nil, created)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestExporterMissingFont(t *testing.T) {
	_, err := NewExporter("/nonexistent/font.ttf").BookingsPDF(sampleBookings(), created)
	assert.Error(t, err)
}

func setupTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupAdminRoutes(r.Group("/api/admin"), NewController(svc))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestControllerListBookings(t *testing.T) {
	svc, _ := newTestService()
	r := setupTestRouter(svc)

	rec := get(r, "/api/admin/bookings?language=en&sortField=name&sortDirection=asc")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool               `json:"success"`
		Data    []bookings.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, []string{"b3", "b1"}, bookingIDs(body.Data))

	rec = get(r, "/api/admin/bookings?participants=abc")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
}

func TestControllerListBookingsError(t *testing.T) {
	r := setupTestRouter(NewService(&stubBookings{err: errors.New("db down")}, &stubContacts{}, nil, nil))

	rec := get(r, "/api/admin/bookings")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestControllerListContactsAndStats(t *testing.T) {
	svc, _ := newTestService()
	r := setupTestRouter(svc)

	rec := get(r, "/api/admin/contacts")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"c1"`)

	rec = get(r, "/api/admin/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dashboard.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.Bookings.Total)
}

func TestControllerExportBookings(t *testing.T) {
	svc, _ := newTestService()
	r := setupTestRouter(svc)

	rec := get(r, "/api/admin/bookings/export.pdf?status=pending")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}
