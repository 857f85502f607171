package timecard

import (
	"fmt"
	"sort"
	"sync"
)

// Employee is a directory entry used to resolve display names on
// attendance exports.
type Employee struct {
	ID   int
	Name string
	Role string
}

// EmployeeDirectory maps employee ids to display names.
type EmployeeDirectory struct {
	mu        sync.RWMutex
	employees map[int]Employee
}

func NewEmployeeDirectory(employees ...Employee) *EmployeeDirectory {
	d := &EmployeeDirectory{employees: make(map[int]Employee, len(employees))}
	for _, e := range employees {
		d.employees[e.ID] = e
	}

	return d
}

// Name returns the display name for id, falling back to a generated
// label for unknown employees.
func (d *EmployeeDirectory) Name(id int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if e, ok := d.employees[id]; ok {
		return e.Name
	}

	return fmt.Sprintf("従業員%d", id)
}

// Add inserts or replaces a directory entry.
func (d *EmployeeDirectory) Add(e Employee) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.employees[e.ID] = e
}

// List returns all entries ordered by id.
func (d *EmployeeDirectory) List() []Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Employee, 0, len(d.employees))
	for _, e := range d.employees {
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
