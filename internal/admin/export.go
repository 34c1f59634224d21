package admin

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"tourly/internal/bookings"
)

const utf8FontFamily = "tourly"

type column struct {
	title string
	width float64
	align string
	value func(b *bookings.Booking) string
}

// A4 landscape leaves 277mm between the default margins
var bookingColumns = []column{
	{"Date", 24, "L", func(b *bookings.Booking) string { return b.Date }},
	{"Name", 42, "L", func(b *bookings.Booking) string { return b.Name }},
	{"Email", 52, "L", func(b *bookings.Booking) string { return b.Email }},
	{"Phone", 30, "L", func(b *bookings.Booking) string { return b.Phone }},
	{"Trip", 48, "L", func(b *bookings.Booking) string { return b.TripTitle }},
	{"Package", 30, "L", func(b *bookings.Booking) string { return b.PackageName }},
	{"Pax", 10, "C", func(b *bookings.Booking) string { return strconv.Itoa(b.Participants) }},
	{"Total", 21, "R", func(b *bookings.Booking) string { return formatSAR(b.TotalPrice) }},
	{"Status", 20, "C", func(b *bookings.Booking) string { return string(b.Status) }},
}

// Exporter renders booking lists as PDF. With a TTF font path names in
// Arabic are embedded as-is; the core Helvetica font only covers latin text.
type Exporter struct {
	fontPath string
}

func NewExporter(fontPath string) *Exporter {
	return &Exporter{fontPath: fontPath}
}

func (e *Exporter) BookingsPDF(list []bookings.Booking, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Bookings", true)
	pdf.SetAuthor("Tourly", true)

	family := "Helvetica"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if e.fontPath != "" {
		pdf.AddUTF8Font(utf8FontFamily, "", e.fontPath)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("failed to load font %s: %w", e.fontPath, err)
		}
		family = utf8FontFamily
		tr = func(s string) string { return s }
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Bookings")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s  |  %d booking(s)  |  Total %s",
		generatedAt.Format("2006-01-02 15:04"), len(list), formatSAR(totalPrice(list))))
	pdf.Ln(9)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range bookingColumns {
			pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	header()

	pdf.SetFont(family, "", 8)
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for i := range list {
		if pdf.GetY()+6 > pageHeight-bottom-10 {
			pdf.AddPage()
			header()
			pdf.SetFont(family, "", 8)
		}
		for _, col := range bookingColumns {
			text := fit(pdf, tr, col.value(&list[i]), col.width-2)
			pdf.CellFormat(col.width, 6, text, "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(list) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "No bookings match the current filters.", "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fit translates text for the current font and cuts it so it stays inside a
// table cell
func fit(pdf *gofpdf.Fpdf, tr func(string) string, text string, width float64) string {
	if out := tr(text); pdf.GetStringWidth(out) <= width {
		return out
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := tr(string(runes) + "...")
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}

func totalPrice(list []bookings.Booking) float64 {
	var total float64
	for i := range list {
		total += list[i].TotalPrice
	}
	return total
}

func formatSAR(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 0, 64) + " SAR"
}
