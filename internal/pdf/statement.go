package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"bankingsystem/internal/models"
)

// Generator — интерфейс (удобно мокать в тестах)
type Generator interface {
	GenerateStatement(p *models.Portfolio) ([]byte, error)
}

// StatementGenerator renders a client portfolio to an in-memory PDF.
type StatementGenerator struct {
	fontName string
}

func NewStatementGenerator() *StatementGenerator {
	return &StatementGenerator{fontName: "Helvetica"}
}

func (g *StatementGenerator) GenerateStatement(p *models.Portfolio) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Account statement — %s", p.Client.Name), false)
	pdf.SetAuthor("Banking System", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "ACCOUNT STATEMENT", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("Client #%06d  issued  %s", p.Client.ID, time.Now().Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// ===== Клиент
	g.sectionTitle(pdf, "Client")
	g.kvLine(pdf, "Name", p.Client.Name)
	g.kvLine(pdf, "Email", p.Client.Email)
	g.kvLine(pdf, "Phone", p.Client.Phone)
	if p.Client.Address != "" {
		g.kvLine(pdf, "Address", p.Client.Address)
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Карты
	g.sectionTitle(pdf, "Bank cards")
	if len(p.BankCards) == 0 {
		g.kvLine(pdf, "Cards", "none")
	}
	for _, card := range p.BankCards {
		g.kvLine(pdf, card.Number, card.Type)
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Транзакции
	g.sectionTitle(pdf, "Transactions")
	if len(p.RecentTransactions) == 0 {
		g.kvLine(pdf, "Transactions", "none")
	}
	for _, tx := range p.RecentTransactions {
		line := fmt.Sprintf("%s -> %s   %.2f", tx.FromCard, tx.ToCard, tx.Amount)
		g.kvLine(pdf, tx.CreatedAt.Format("02.01.2006 15:04"), line)
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Инвестиции
	g.sectionTitle(pdf, "Holdings")
	g.kvLine(pdf, "Insurance policies", fmt.Sprintf("%d", len(p.Insurances)))
	g.kvLine(pdf, "Fund investments", fmt.Sprintf("%d", len(p.Investments)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render statement: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *StatementGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(g.fontName, "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *StatementGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(55, 6, key, "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.MultiCell(0, 6, value, "", "L", false)
}

func (g *StatementGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(left, y, pageW-right, y)
	pdf.SetXY(x, y+2)
}
