// internal/server/validate.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"suggestion-mesh/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

// DecodeAndValidate reads the request body, checks it against a JSON schema,
// and unmarshals it into out. Any failure maps to an InvalidArgument error
// so handlers can write it straight back to the caller.
func DecodeAndValidate(r *http.Request, schema map[string]interface{}, out interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.NewInvalidArgumentError("Failed to read request body", err.Error())
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	var document map[string]interface{}
	if err := json.Unmarshal(body, &document); err != nil {
		return errors.NewInvalidArgumentError("Request body must be valid JSON", err.Error())
	}

	if err := validateDocument(schema, document); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewInvalidArgumentError("Request body has invalid field types", err.Error())
	}
	return nil
}

func validateDocument(schemaMap, data map[string]interface{}) error {
	if len(schemaMap) == 0 {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(schemaMap)
	documentLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewInternalError(err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return errors.NewInvalidArgumentError("Request validation failed", strings.Join(errs, "; "))
	}

	return nil
}
