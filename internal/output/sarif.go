package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/slopcheck/internal/detect"
	"github.com/dshills/slopcheck/internal/rules"
)

// SARIFWriter outputs findings in SARIF v2.1.0 format.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, report *detect.Report) error {
	sarif := buildSARIF(report)
	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling SARIF: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// SARIF schema types (v2.1.0)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	ShortDescription sarifMessage        `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig  `json:"defaultConfiguration"`
	Properties       sarifRuleProperties `json:"properties,omitempty"`
}

type sarifDefaultConfig struct {
	Level string `json:"level"`
}

type sarifRuleProperties struct {
	Tags []string `json:"tags,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

func buildSARIF(report *detect.Report) sarifLog {
	rulesMap := make(map[string]sarifRule)
	var ruleOrder []string
	var results []sarifResult

	uri := report.Input.Path
	if uri == "" {
		uri = "stdin"
	}

	for _, f := range report.Findings {
		ruleID := fmt.Sprintf("slopcheck/%s/%s", f.Category, f.Rule)

		if _, ok := rulesMap[ruleID]; !ok {
			rulesMap[ruleID] = sarifRule{
				ID:               ruleID,
				Name:             f.Rule,
				ShortDescription: sarifMessage{Text: categoryLabel(f.Category)},
				DefaultConfig:    sarifDefaultConfig{Level: categoryToLevel(f.Category)},
				Properties:       sarifRuleProperties{Tags: []string{string(f.Category)}},
			}
			ruleOrder = append(ruleOrder, ruleID)
		}

		results = append(results, sarifResult{
			RuleID:  ruleID,
			Level:   categoryToLevel(f.Category),
			Message: sarifMessage{Text: fmt.Sprintf("%s: %q", categoryLabel(f.Category), f.Match)},
			Locations: []sarifLocation{
				{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{URI: uri},
						Region: sarifRegion{
							StartLine:   f.Line,
							StartColumn: f.Column,
						},
					},
				},
			},
		})
	}

	sarifRules := make([]sarifRule, 0, len(ruleOrder))
	for _, id := range ruleOrder {
		sarifRules = append(sarifRules, rulesMap[id])
	}

	return sarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:           report.Tool,
						Version:        report.Version,
						InformationURI: "https://github.com/dshills/slopcheck",
						Rules:          sarifRules,
					},
				},
				Results: results,
			},
		},
	}
}

// categoryToLevel maps a slop category to a SARIF level.
func categoryToLevel(cat rules.Category) string {
	switch cat {
	case rules.CategoryHighRisk:
		return "error"
	case rules.CategoryBuzzwords, rules.CategoryMetaCommentary, rules.CategoryGenericFunctions:
		return "warning"
	default:
		return "note"
	}
}
