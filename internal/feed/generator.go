package feed

import (
	"log"
)

// Result describes a finished generator run
type Result struct {
	OutputPath string
	Count      int
	Written    bool // false when there was nothing to write
}

// Generator collects notifications from language directories and writes the
// combined feed to a single file.
type Generator struct {
	dirs       []string
	outputPath string
	logger     *log.Logger
}

// NewGenerator builds a Generator over dirs, processed in the given order.
func NewGenerator(dirs []string, outputPath string, logger *log.Logger) *Generator {
	return &Generator{
		dirs:       dirs,
		outputPath: outputPath,
		logger:     logger,
	}
}

// Run performs one pass: read, merge, sort, write. Only a failed write is
// returned as an error.
func (g *Generator) Run() (Result, error) {
	result := Result{OutputPath: g.outputPath}

	notifications := Collect(g.dirs, g.logger)
	if len(notifications) == 0 {
		g.logger.Printf("Warning: no files to process")
		return result, nil
	}

	sorted := SortNewestFirst(notifications)

	if err := WriteFile(g.outputPath, sorted); err != nil {
		return result, err
	}

	result.Count = len(sorted)
	result.Written = true
	return result, nil
}
