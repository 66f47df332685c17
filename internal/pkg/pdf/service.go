// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/cafe-gateway/internal/config"
	"github.com/your-org/cafe-gateway/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates a PDF receipt for an order
func (s *Service) GenerateReceipt(o *order.View) (*bytes.Buffer, error) {
	// Prepare template data
	data := ReceiptData{
		ReceiptNumber: fmt.Sprintf("Q%d", o.ID),
		IssuedDate:    time.Now().Format("January 2, 2006"),
		Order:         o,
		Store: StoreInfo{
			Name:  s.config.App.StoreName,
			Phone: s.config.App.StorePhone,
		},
	}

	// Generate HTML from template
	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	// Convert HTML to PDF
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	// Set PDF options
	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	// Add page from HTML content
	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	// Create PDF
	err = pdfg.Create()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data ReceiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	ReceiptNumber string      `json:"receipt_number"`
	IssuedDate    string      `json:"issued_date"`
	Order         *order.View `json:"order"`
	Store         StoreInfo   `json:"store"`
}

// StoreInfo represents store information
type StoreInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .store-info {
            flex: 1;
        }
        .receipt-info {
            text-align: right;
            flex: 1;
        }
        .receipt-title {
            font-size: 28px;
            font-weight: bold;
            color: #9a3412;
            margin-bottom: 10px;
        }
        .receipt-details {
            margin-bottom: 30px;
        }
        .receipt-details table {
            width: 100%;
        }
        .receipt-details td {
            padding: 5px 0;
            vertical-align: top;
        }
        .receipt-details .label {
            font-weight: bold;
            width: 150px;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col {
            text-align: right;
            width: 80px;
        }
        .total-row {
            font-weight: bold;
            background-color: #f8f9fa;
        }
        .footer {
            margin-top: 40px;
            text-align: center;
            color: #6b7280;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="store-info">
            <h2>{{.Store.Name}}</h2>
            {{if .Store.Phone}}<p>Tel: {{.Store.Phone}}</p>{{end}}
        </div>
        <div class="receipt-info">
            <div class="receipt-title">RECEIPT</div>
            <p>#{{.ReceiptNumber}}</p>
            <p>{{.IssuedDate}}</p>
        </div>
    </div>

    <div class="receipt-details">
        <table>
            <tr>
                <td class="label">Customer</td>
                <td>{{.Order.Name}}</td>
            </tr>
            <tr>
                <td class="label">Telephone</td>
                <td>{{.Order.Tel}}</td>
            </tr>
            {{if .Order.OrderedOn}}
            <tr>
                <td class="label">Ordered on</td>
                <td>{{.Order.OrderedOn}}</td>
            </tr>
            {{end}}
        </table>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Menu</th>
                <th class="qty-col">Quantity</th>
                <th>Note</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Lines}}
            <tr>
                <td>{{.MenuName}}</td>
                <td class="qty-col">{{.Quantity}}</td>
                <td>{{.Option}}</td>
            </tr>
            {{end}}
            <tr class="total-row">
                <td>Total</td>
                <td class="qty-col" colspan="2">{{printf "%.2f" .Order.TotalPrice}}</td>
            </tr>
        </tbody>
    </table>

    <div class="footer">
        <p>Thank you for your order.</p>
    </div>
</body>
</html>
`
