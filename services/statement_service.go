package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/mainamike/course_marketplace/configs"
	"github.com/mainamike/course_marketplace/models"
	"github.com/mainamike/course_marketplace/notifications"
)

// GenerateSettlementStatement renders a payout statement PDF for a
// completed settlement, uploads it and emails the instructor the link.
// Runs after the disbursement has committed; any failure here is logged
// and never touches the settlement itself.
func GenerateSettlementStatement(settlement models.Settlement, instructor models.Instructor) {
	htmlData, err := renderStatementHTML(settlement, instructor)
	if err != nil {
		log.Printf("🔥 Failed to render statement HTML for settlement %s: %v", settlement.ID, err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate statement PDF for settlement %s: %v", settlement.ID, err)
		return
	}

	statementURL, err := uploadToCloudinary(pdfBytes, fmt.Sprintf("statements/%s", settlement.ID))
	if err != nil {
		log.Printf("🔥 Failed to upload statement for settlement %s: %v", settlement.ID, err)
		return
	}

	go notifications.SendEmail(
		instructor.Name,
		instructor.Email,
		"Your Payout Has Been Processed",
		fmt.Sprintf("<h1>Payout Processed</h1><p>Hello %s,</p><p>Your payout of $%.2f (commission rate %.0f%%) has been sent. Transfer reference: %s.</p><p><a href=\"%s\">Download your payout statement</a></p>",
			instructor.Name, settlement.InstructorAmount, settlement.CommissionRate, settlement.TransferRef, statementURL),
	)

	log.Printf("✅ Generated statement for settlement %s (%s)", settlement.ID, statementURL)
}

func renderStatementHTML(settlement models.Settlement, instructor models.Instructor) (string, error) {
	tmpl, err := template.ParseFiles("templates/statement.html")
	if err != nil {
		return "", err
	}

	data := struct {
		InstructorName   string
		SettlementID     string
		TransferRef      string
		TotalAmount      string
		CommissionRate   string
		InstructorAmount string
		PlatformCut      string
		PaidAt           string
		EntryCount       int
	}{
		InstructorName:   instructor.Name,
		SettlementID:     settlement.ID.String(),
		TransferRef:      settlement.TransferRef,
		TotalAmount:      fmt.Sprintf("$%.2f", settlement.Amount),
		CommissionRate:   fmt.Sprintf("%.0f%%", settlement.CommissionRate),
		InstructorAmount: fmt.Sprintf("$%.2f", settlement.InstructorAmount),
		PlatformCut:      fmt.Sprintf("$%.2f", settlement.PlatformCut),
		PaidAt:           settlement.PaidAt.Format("January 2, 2006"),
		EntryCount:       len(settlement.Entries),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, publicID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "marketplace_statements",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
