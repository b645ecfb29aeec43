package validation

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ReportSchema is the JSON Schema (draft 2020-12) of the JSON produced by
// (*Error).MarshalJSON for a failed validation.
//
//go:embed report.schema.json
var ReportSchema []byte

const reportSchemaURL = "https://github.com/nsat/validatron/report.schema.json"

var compiledReportSchema = sync.OnceValues(func() (*jsonschema.Schema, error) { //nolint:gochecknoglobals
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(ReportSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse report schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource(reportSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add report schema resource: %w", err)
	}

	return compiler.Compile(reportSchemaURL)
})

// CheckReport verifies that data is a well-formed JSON report, e.g. one
// received from another service.
func CheckReport(data []byte) error {
	schema, err := compiledReportSchema()
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("report is not valid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("report does not match schema: %w", err)
	}

	return nil
}
