package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema describes the stored progress record. No field is required
// (absent fields take documented defaults), but a present field with the
// wrong shape marks the record as damaged so Load can recover around it.
const recordSchema = `{
	"type": "object",
	"properties": {
		"completedMissions": {"type": "array", "items": {"type": "string"}},
		"selectedPath": {"type": "string"},
		"pathProgress": {
			"type": "object",
			"additionalProperties": {"type": "array", "items": {"type": "string"}}
		},
		"pathBadges": {
			"type": "object",
			"additionalProperties": {"type": "array", "items": {"type": "string"}}
		},
		"certificatePaths": {"type": "array", "items": {"type": "string"}},
		"lastMission": {"type": "string"},
		"showCapstoneIntro": {"type": "boolean"}
	}
}`

var compileRecordSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal([]byte(recordSchema), &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://progress-record.json", def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("schema://progress-record.json")
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateRecord checks a parsed record against the schema.
func validateRecord(doc any) error {
	compiled, err := compileRecordSchema()
	if err != nil {
		return err
	}
	return compiled.Validate(doc)
}
