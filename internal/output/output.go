package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/slopcheck/internal/detect"
	"github.com/dshills/slopcheck/internal/rules"
)

// Writer writes a detection report in a specific format.
type Writer interface {
	Write(w io.Writer, report *detect.Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	case "sarif":
		return &SARIFWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the specified output (file path or stdout).
func WriteReport(report *detect.Report, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, report)
}

// categoryLabel returns the display header for a category.
func categoryLabel(cat rules.Category) string {
	switch cat {
	case rules.CategoryHighRisk:
		return "HIGH RISK PHRASES"
	case rules.CategoryBuzzwords:
		return "BUZZWORDS"
	case rules.CategoryMetaCommentary:
		return "META-COMMENTARY"
	case rules.CategoryWordyPhrases:
		return "WORDY PHRASES"
	case rules.CategoryTransitionWords:
		return "TRANSITION WORDS"
	case rules.CategoryGenericVariables:
		return "GENERIC VARIABLE NAMES"
	case rules.CategoryGenericFunctions:
		return "GENERIC FUNCTION NAMES"
	case rules.CategoryObviousComments:
		return "OBVIOUS COMMENTS"
	case rules.CategorySingleStepChains:
		return "UNNECESSARY SINGLE PIPES"
	default:
		return string(cat)
	}
}
