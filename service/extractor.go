package service

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/resolvetax/transcript-service/client"
)

// minTextLength is the threshold below which a PDF's text layer is treated
// as absent and the scanned-page OCR path kicks in.
const minTextLength = 20

// TextExtractor turns a transcript PDF into plain text: text layer first,
// per-page OCR when the document turns out to be a scan.
type TextExtractor struct {
	pdfProcessor    PDFProcessor
	tesseractClient *client.TesseractClient
}

func NewTextExtractor(pdfProcessor PDFProcessor, tesseractClient *client.TesseractClient) *TextExtractor {
	return &TextExtractor{
		pdfProcessor:    pdfProcessor,
		tesseractClient: tesseractClient,
	}
}

// Extract returns the document's text. OCR failures on individual pages are
// logged and skipped; the error return fires only when no path produced any
// text at all.
func (e *TextExtractor) Extract(pdfData []byte, filename string) (string, error) {
	text, err := e.pdfProcessor.ExtractText(pdfData)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", filename, err)
	}
	if len(strings.TrimSpace(text)) >= minTextLength {
		return text, nil
	}

	log.Printf("PDF %s has no usable text layer, attempting image-based OCR", filename)
	images, imgErr := e.pdfProcessor.ExtractImages(pdfData)
	if imgErr != nil || len(images) == 0 {
		return "", fmt.Errorf("no text layer and image extraction failed for %s: %v", filename, imgErr)
	}

	var combined strings.Builder
	pages := 0
	for _, img := range images {
		tempImgFile, err := saveImageToTempFile(img)
		if err != nil {
			log.Printf("Failed to save temporary image for OCR: %v", err)
			continue
		}

		pageText, _, ocrErr := e.tesseractClient.ExtractTextAndQuality(tempImgFile)
		os.Remove(tempImgFile)
		if ocrErr != nil {
			log.Printf("OCR failed for a page in %s: %v", filename, ocrErr)
			continue
		}

		combined.WriteString(pageText)
		combined.WriteString("\n")
		pages++
	}

	if pages == 0 {
		return "", fmt.Errorf("OCR produced no text for %s", filename)
	}
	return combined.String(), nil
}

func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "transcript-page-*.png")
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}
	return tempFile.Name(), nil
}
