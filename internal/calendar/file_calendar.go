package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// LoadTableFile reads a holiday table from a local text file. Each
// non-empty line holds one or more packed records in the built-in format;
// lines starting with # are comments:
//
//	# 2026 National Day
//	202609200620261001;
//	202610011620261001;202610021620261001;
func LoadTableFile(path string, logger *zap.Logger) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	table, err := ReadTable(file)
	if err != nil {
		return nil, fmt.Errorf("holiday file %s: %w", path, err)
	}

	if logger != nil {
		logger.Info("Holiday file loaded",
			zap.String("file", path),
			zap.Int("records", table.Len()),
			zap.Ints("years", table.Years()))
	}

	return table, nil
}

// ReadTable decodes a line oriented holiday table, see LoadTableFile
func ReadTable(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	var records []Holiday

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if len(line)%recordLen != 0 {
			return nil, fmt.Errorf("line %d: length %d is not a multiple of %d", lineNo, len(line), recordLen)
		}
		for i := 0; i < len(line); i += recordLen {
			h, err := decodeRecord(line[i : i+recordLen])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			records = append(records, h)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holiday table: %w", err)
	}

	return newTable(records)
}
