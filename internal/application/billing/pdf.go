package billing

import (
	"context"
	"time"

	"github.com/jfcastano/optica-distri/internal/application/dto"
	"github.com/jfcastano/optica-distri/internal/domain/access"
)

// BillingPDFGenerator puerto para la representación imprimible del reporte de
// cobro mensual. La implementación vive en infrastructure/pdf.
type BillingPDFGenerator interface {
	GenerateBillingPDF(ctx context.Context, report *dto.BillingReportResponse) ([]byte, error)
}

// PDFUseCase arma el reporte de cobro y lo convierte a PDF.
type PDFUseCase struct {
	summaries *SummaryUseCase
	generator BillingPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(summaries *SummaryUseCase, generator BillingPDFGenerator) *PDFUseCase {
	return &PDFUseCase{summaries: summaries, generator: generator}
}

// GenerateBillingPDF genera el PDF del reporte de cobro de (tienda, mes).
func (uc *PDFUseCase) GenerateBillingPDF(ctx context.Context, scope access.Scope, shopID string, month *time.Time) ([]byte, error) {
	report, err := uc.summaries.BillingReport(ctx, scope, shopID, month)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateBillingPDF(ctx, report)
}
