package catalog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrRegistryUnreadable marks a provider registry that cannot be opened.
// This is fatal for the run; callers map it to the catalog-error exit code.
var ErrRegistryUnreadable = errors.New("provider registry unreadable")

// Provider is one registry record. Lines may carry more fields; only the
// provider name matters to the checker.
type Provider struct {
	Name string `json:"provider_name"`
}

// EachProvider scans the registry at path and invokes fn for every
// well-formed line, in file order. Malformed lines and lines without a
// provider_name are reported through bad with their 1-based line number and
// do not stop the scan. Only opening or reading the file itself fails the
// call.
func EachProvider(path string, fn func(Provider), bad func(line int, err error)) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRegistryUnreadable, path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var p Provider
		if err := json.Unmarshal([]byte(text), &p); err != nil {
			bad(line, fmt.Errorf("parse registry line: %w", err))
			continue
		}
		if strings.TrimSpace(p.Name) == "" {
			bad(line, errors.New("registry line has no provider_name"))
			continue
		}
		fn(p)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRegistryUnreadable, path, err)
	}
	return nil
}
