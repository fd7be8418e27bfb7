package common

import "runtime"

// GetProcNum returns the worker count for a pool bounded by maxGoroutines,
// where zero means one worker per CPU.
func GetProcNum(maxGoroutines uint) int {
	if maxGoroutines == 0 {
		return runtime.NumCPU()
	}

	return int(maxGoroutines)
}
