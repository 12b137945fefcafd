package scan

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

// systemMemory reads live system memory stats.
type systemMemory struct{}

func (systemMemory) UsedPercent() (float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("read memory stats: %w", err)
	}
	return vm.UsedPercent, nil
}
