package bank

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads and validates a JSON bank file and builds a Bank from
// it. The file must be an array of question records; it is checked
// against the bank schema before decoding so hand-edited banks fail
// with a schema error rather than a zero-value record downstream.
func LoadJSON(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse bank file: %w", err)
	}

	schema, err := compiledBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("validate bank file: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode bank file: %w", err)
	}

	return New(questions)
}
