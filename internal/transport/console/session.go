package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ItzPhoeniX719/LucesySombrasMantenimientoLLM-AntonioRomero/internal/domain/payroll"
	"github.com/ItzPhoeniX719/LucesySombrasMantenimientoLLM-AntonioRomero/internal/platform/metrics"
	"github.com/ItzPhoeniX719/LucesySombrasMantenimientoLLM-AntonioRomero/internal/reports"
)

const (
	promptChoice = "Seleccione opcion: "
	promptName   = "Nombre: "
	promptSalary = "Sueldo Bruto: "

	msgEmptyInput    = "Entrada vacía. Intente nuevamente."
	msgInvalidNumber = "Entrada inválida. Ingrese un número válido."
	msgNobody        = "No hay nadie"
	msgUnknownOption = "Error"

	optionReport = "4"
	optionExit   = "5"

	reportSeparator = "----------------"
)

var bannerLines = []string{
	"********************************",
	"SISTEMA DE NOMINAS V2.3 FINAL_REAL_AHORA_SI",
	"********************************",
}

var menuLines = []string{
	"",
	"1. Agregar empleado Ventas",
	"2. Agregar empleado IT",
	"3. Agregar empleado RRHH",
	"4. Ver reporte",
	"5. Salir",
	"",
}

// Session drives the interactive payroll loop over one input/output pair.
// All protocol text goes to out; diagnostics go to the logger only, so the
// transcript stays clean.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	store  *payroll.Store
	logger *slog.Logger
	stats  *metrics.Collector
	pdfDir string
}

// NewSession wires a session over the given streams. pdfDir enables the PDF
// snapshot of the report when non-empty.
func NewSession(in io.Reader, out io.Writer, store *payroll.Store, logger *slog.Logger, stats *metrics.Collector, pdfDir string) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		store:  store,
		logger: logger,
		stats:  stats,
		pdfDir: pdfDir,
	}
}

// Run blocks until the user picks the exit option or the input stream ends.
func (s *Session) Run() {
	s.printBanner()
	for {
		s.printMenu()
		option, ok := s.readLine(promptChoice)
		if !ok {
			s.logger.Warn("input stream closed, ending session")
			return
		}

		if department, ok := payroll.DepartmentFromMenuOption(option); ok {
			s.addEmployee(department)
			continue
		}

		switch option {
		case optionReport:
			s.printReport()
		case optionExit:
			return
		default:
			fmt.Fprintln(s.out, msgUnknownOption)
			s.stats.MenuError()
			s.logger.Debug("unknown menu option", "option", option)
		}
	}
}

func (s *Session) addEmployee(department payroll.Department) {
	name, ok := s.promptNonEmpty(promptName)
	if !ok {
		return
	}
	grossSalary, ok := s.promptFloat(promptSalary)
	if !ok {
		return
	}

	employee := s.store.Add(name, department, grossSalary)
	fmt.Fprintf(s.out, "Guardado %s.\n", department.Label())
	s.stats.EmployeeAdded()
	s.logger.Info("employee registered",
		"id", employee.ID,
		"department", string(department),
		"net", employee.NetSalary,
	)
}

func (s *Session) printReport() {
	s.stats.ReportPrinted()

	employees := s.store.All()
	if len(employees) == 0 {
		fmt.Fprintln(s.out, msgNobody)
	}
	for _, employee := range employees {
		fmt.Fprintf(s.out, "Emp: %s\n", employee.Name)
		fmt.Fprintf(s.out, "Depto: %s\n", employee.Department.Label())
		fmt.Fprintf(s.out, "Pago Final: %s\n", payroll.FormatAmount(employee.NetSalary))
		fmt.Fprintln(s.out, reportSeparator)
	}

	if s.pdfDir == "" {
		return
	}
	path, err := reports.WriteSnapshot(s.pdfDir, employees)
	if err != nil {
		s.logger.Warn("report snapshot failed", "err", err)
		return
	}
	s.logger.Info("report snapshot written", "path", path)
}

// promptNonEmpty re-prompts until the user enters something that is not
// blank. ok is false only when the input stream ends.
func (s *Session) promptNonEmpty(prompt string) (value string, ok bool) {
	for {
		value, ok = s.readLine(prompt)
		if !ok {
			return "", false
		}
		if value != "" {
			return value, true
		}
		fmt.Fprintln(s.out, msgEmptyInput)
		s.stats.InputRejected()
	}
}

// promptFloat re-prompts until the user enters a parseable number. Sign is
// not validated: zero and negative amounts are accepted as entered.
func (s *Session) promptFloat(prompt string) (value float64, ok bool) {
	for {
		raw, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return value, true
		}
		fmt.Fprintln(s.out, msgInvalidNumber)
		s.stats.InputRejected()
	}
}

// readLine prints the prompt without a newline and reads one line, trimmed
// of surrounding whitespace. ok is false when the input stream ends.
func (s *Session) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) printBanner() {
	for _, line := range bannerLines {
		fmt.Fprintln(s.out, line)
	}
}

func (s *Session) printMenu() {
	for _, line := range menuLines {
		fmt.Fprintln(s.out, line)
	}
}
