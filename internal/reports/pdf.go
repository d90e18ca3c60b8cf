package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ItzPhoeniX719/LucesySombrasMantenimientoLLM-AntonioRomero/internal/domain/payroll"
)

// WriteSnapshot renders the payroll report as a PDF under dir and returns
// the path of the written file. The file name carries a UTC timestamp so
// successive snapshots never overwrite each other.
func WriteSnapshot(dir string, employees []payroll.Employee) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("reporte-%s.pdf", time.Now().UTC().Format("20060102-150405.000000")))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Reporte de Nominas")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)

	if len(employees) == 0 {
		pdf.Cell(0, 8, "No hay nadie")
	}
	for _, employee := range employees {
		pdf.Cell(0, 8, fmt.Sprintf("Emp: %s", employee.Name))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Depto: %s", employee.Department.Label()))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Pago Final: %s", payroll.FormatAmount(employee.NetSalary)))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Ref: %s", employee.ID))
		pdf.Ln(10)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
