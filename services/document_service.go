package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"society-billing-service/config"
)

// InterfaceDocumentService defines the statement renderer interface
type InterfaceDocumentService interface {
	RenderStatement(st *Statement) ([]byte, error)
}

// DocumentService renders a statement view into a downloadable PDF. Two
// identical bill copies are printed side by side on one A4 page, one for
// the resident and one for the society office.
type DocumentService struct {
	Config *config.Config
}

// NewDocumentService creates a new document service
func NewDocumentService(cfg *config.Config) InterfaceDocumentService {
	return &DocumentService{Config: cfg}
}

const (
	copyWidth  = 95.0
	leftCopyX  = 8.0
	rightCopyX = 108.0
)

// RenderStatement renders the statement into PDF bytes. The layout takes
// no part in the figures: the statement arrives fully computed.
func (s *DocumentService) RenderStatement(st *Statement) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	s.renderCopy(pdf, st, leftCopyX)
	s.renderCopy(pdf, st, rightCopyX)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render statement %s: %w", st.ReferenceID, err)
	}
	return buf.Bytes(), nil
}

func (s *DocumentService) renderCopy(pdf *fpdf.Fpdf, st *Statement, x float64) {
	y := 10.0
	issueDate := time.Now().Format("02-Jan-2006")

	pdf.Rect(x-2, y-2, copyWidth+4, 270, "D")

	// Society header
	pdf.SetFont("Arial", "B", 11)
	pdf.SetXY(x, y)
	pdf.CellFormat(copyWidth, 6, s.Config.SocietyName, "", 0, "C", false, 0, "")
	y += 8

	pdf.SetFont("Arial", "", 8)
	pdf.SetXY(x, y)
	pdf.CellFormat(copyWidth, 4, "Statement Ref: "+st.ReferenceID, "", 0, "C", false, 0, "")
	y += 7

	// Issue and due dates
	pdf.SetFont("Arial", "", 8)
	pdf.SetXY(x, y)
	pdf.CellFormat(25, 5, "Date of issue:", "1", 0, "L", false, 0, "")
	pdf.CellFormat(22, 5, issueDate, "1", 0, "L", false, 0, "")
	pdf.CellFormat(22, 5, "Due Date:", "1", 0, "L", false, 0, "")
	pdf.CellFormat(26, 5, st.DueDate.Format("02-Jan-2006"), "1", 0, "L", false, 0, "")
	y += 8

	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(20, 4, "Name:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(75, 4, st.ResidentName, "", 0, "L", false, 0, "")
	y += 5
	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(20, 4, "House Number:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(75, 4, st.HouseNumber, "", 0, "L", false, 0, "")
	y += 5
	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(20, 4, "House Size:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(75, 4, st.HouseSize, "", 0, "L", false, 0, "")
	y += 7

	// Payment history table
	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(242, 242, 242)
	pdf.CellFormat(copyWidth, 5, "Bill Payment History", "1", 0, "L", true, 0, "")
	y += 5
	pdf.SetXY(x, y)
	pdf.CellFormat(39, 4, "Billing Month", "1", 0, "L", false, 0, "")
	pdf.CellFormat(28, 4, "Bill Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(28, 4, "Received Amount", "1", 0, "R", false, 0, "")
	y += 4
	pdf.SetFont("Arial", "", 8)
	for _, row := range st.History {
		pdf.SetXY(x, y)
		pdf.CellFormat(39, 4, row.BillingMonth, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 4, formatAmount(row.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 4, formatAmount(row.ReceivedAmount), "1", 0, "R", false, 0, "")
		y += 4
	}
	y += 4

	// Charge breakdown
	chargeRows := []struct {
		label  string
		amount int
	}{
		{"Arrears:", 0},
		{"MASJID FUND", st.MasjidFund},
		{"GUARD SERVICE", st.GuardService},
		{"STREET LIGHTING", st.StreetLighting},
		{"GARDENER", st.Gardener},
	}
	pdf.SetFont("Arial", "", 8)
	for _, row := range chargeRows {
		pdf.SetXY(x, y)
		pdf.CellFormat(47, 5, row.label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(12, 5, "Rs.", "1", 0, "R", false, 0, "")
		pdf.CellFormat(36, 5, formatAmount(row.amount), "1", 0, "R", false, 0, "")
		y += 5
	}
	if st.FineAmount > 0 {
		pdf.SetXY(x, y)
		pdf.CellFormat(47, 5, "FINE", "1", 0, "L", true, 0, "")
		pdf.CellFormat(12, 5, "Rs.", "1", 0, "R", false, 0, "")
		pdf.CellFormat(36, 5, formatAmount(st.FineAmount), "1", 0, "R", false, 0, "")
		y += 5
	}
	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(47, 5, "Total Payable:", "1", 0, "L", true, 0, "")
	pdf.CellFormat(12, 5, "Rs.", "1", 0, "R", false, 0, "")
	pdf.CellFormat(36, 5, formatAmount(st.Amount+st.FineAmount), "1", 0, "R", false, 0, "")
	y += 10

	// Footer notes
	pdf.SetFont("Arial", "", 6)
	pdf.SetXY(x, y)
	pdf.CellFormat(copyWidth, 3, "This is a computer generated document as such requires no signature.", "", 0, "L", false, 0, "")
	y += 3
	pdf.SetXY(x, y)
	pdf.CellFormat(copyWidth, 3, "Errors and omissions excepted.", "", 0, "L", false, 0, "")
	y += 6
	pdf.SetFont("Arial", "B", 8)
	pdf.SetXY(x, y)
	pdf.CellFormat(copyWidth, 4, "Complaint Timings from 9 AM to 4 PM", "", 0, "C", false, 0, "")
}

func formatAmount(amount int) string {
	return fmt.Sprintf("%d", amount)
}
