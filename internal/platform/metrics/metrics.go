package metrics

import "sync/atomic"

// Collector counts what happened during one interactive session. Counters
// are reported as a single snapshot when the session ends.
type Collector struct {
	employeesAdded uint64
	reportsPrinted uint64
	inputsRejected uint64
	menuErrors     uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) EmployeeAdded() {
	atomic.AddUint64(&c.employeesAdded, 1)
}

func (c *Collector) ReportPrinted() {
	atomic.AddUint64(&c.reportsPrinted, 1)
}

// InputRejected records one re-prompt caused by an empty name or an
// unparseable salary.
func (c *Collector) InputRejected() {
	atomic.AddUint64(&c.inputsRejected, 1)
}

func (c *Collector) MenuError() {
	atomic.AddUint64(&c.menuErrors, 1)
}

func (c *Collector) Snapshot() map[string]any {
	return map[string]any{
		"employeesAdded": atomic.LoadUint64(&c.employeesAdded),
		"reportsPrinted": atomic.LoadUint64(&c.reportsPrinted),
		"inputsRejected": atomic.LoadUint64(&c.inputsRejected),
		"menuErrors":     atomic.LoadUint64(&c.menuErrors),
	}
}
