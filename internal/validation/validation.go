package validation

import (
	"fmt"
	"os"
)

// IsValidInputPath checks that a given path exists and is a regular file or directory.
func IsValidInputPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}
	return nil
}

// IsValidSection checks if the given report section is supported for conversion.
func IsValidSection(section string) error {
	switch section {
	case "trades", "cash", "positions":
		return nil
	default:
		return fmt.Errorf("unsupported section: %s. Supported sections are 'trades', 'cash', 'positions'", section)
	}
}
