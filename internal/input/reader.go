// Package input reads candidate phone numbers from newline-delimited
// text files.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/waprofiles/waprofiles/internal/common"
)

// ReadNumbers reads one candidate number per line. Blank lines and lines
// starting with '#' are skipped; surrounding whitespace is trimmed.
// A missing file or a file with zero usable lines is an error.
func ReadNumbers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	var numbers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		numbers = append(numbers, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file %s: %w", path, err)
	}

	if len(numbers) == 0 {
		return nil, fmt.Errorf("%s: %w", path, common.ErrNoIdentifiers)
	}
	return numbers, nil
}
