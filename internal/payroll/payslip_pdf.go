package payroll

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=payslip_pdf.go -destination=mock/slip_renderer_mock.go -package=mock

// SlipRenderer merender slip gaji dan mengembalikan path file hasilnya.
type SlipRenderer interface {
	Render(data SlipData) (string, error)
}

type fileSlipRenderer struct {
	dir string
}

// NewFileSlipRenderer menulis slip PDF ke direktori lokal. Nama file
// deterministik per karyawan per periode, jadi rerun menimpa slip lama.
func NewFileSlipRenderer(dir string) SlipRenderer {
	return &fileSlipRenderer{dir: dir}
}

func (r *fileSlipRenderer) Render(data SlipData) (string, error) {
	pdf, err := buildSimplePayslipPDF(slipLines(data))
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("payslip_%s_%d_%02d.pdf", data.PersonalID, data.Year, data.Month)
	path := filepath.Join(r.dir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", err
	}

	return path, nil
}

// buildSimplePayslipPDF merakit PDF satu halaman tanpa library eksternal.
// Cukup untuk slip teks; kalau butuh layout sungguhan baru pakai generator.
func buildSimplePayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
