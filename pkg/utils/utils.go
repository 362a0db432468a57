// Package utils holds small reflection helpers shared by the CLI commands.
package utils

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-analyzer/pkg/errors"
)

// GetSchemaFromConfig reflects the JSON schema of a configuration struct and
// returns it as a JSON document.
func GetSchemaFromConfig(config any) (string, error) {
	schema := jsonschema.Reflect(config)

	raw, err := json.Marshal(schema)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidParameter, "failed to marshal config schema", err)
	}

	return string(raw), nil
}
