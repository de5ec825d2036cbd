// Package validation checks request payloads against JSON schemas before they
// reach the todo use case. Every failure is a *model.ValidationError.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

const statusParam = "status"

var quoted = regexp.MustCompile(`'([^']*)'`)

// CreateTodo validates and decodes a create request body.
func CreateTodo(body []byte) (model.CreateTodoDTO, error) {
	var dto model.CreateTodoDTO
	if err := validateBody(createTodo, body); err != nil {
		return dto, err
	}
	if err := json.Unmarshal(body, &dto); err != nil {
		return dto, invalidBody()
	}
	return dto, nil
}

// UpdateTodoStatus validates and decodes a status update body.
func UpdateTodoStatus(body []byte) (model.UpdateTodoStatusDTO, error) {
	var dto model.UpdateTodoStatusDTO
	if err := validateBody(updateStatus, body); err != nil {
		return dto, err
	}
	if err := json.Unmarshal(body, &dto); err != nil {
		return dto, invalidBody()
	}
	return dto, nil
}

// FilterTodos normalizes the list query. status may repeat and each value may
// hold a comma separated list; blanks are dropped. Any other parameter is rejected.
func FilterTodos(query url.Values) (model.FilterTodosDTO, error) {
	var dto model.FilterTodosDTO

	document := make(map[string]any, len(query))
	for key, values := range query {
		if key != statusParam {
			raw := make([]any, len(values))
			for i, value := range values {
				raw[i] = value
			}
			document[key] = raw
			continue
		}
		statuses := make([]any, 0, len(values))
		for _, value := range values {
			for _, part := range strings.Split(value, ",") {
				if part = strings.TrimSpace(part); part != "" {
					statuses = append(statuses, part)
				}
			}
		}
		document[key] = statuses
	}

	if err := filterTodos.Validate(document); err != nil {
		return dto, toValidationError(err)
	}

	if statuses, ok := document[statusParam].([]any); ok {
		for _, status := range statuses {
			value := entity.TodoStatus(status.(string))
			if !slices.Contains(dto.Status, value) {
				dto.Status = append(dto.Status, value)
			}
		}
	}
	return dto, nil
}

// TodoID accepts only the canonical 36 character UUID form.
func TodoID(id string) error {
	if len(id) != 36 {
		return &model.ValidationError{Field: "id", Message: msg.GetMessage("todo.error.invalid-id")}
	}
	if _, err := uuid.Parse(id); err != nil {
		return &model.ValidationError{Field: "id", Message: msg.GetMessage("todo.error.invalid-id")}
	}
	return nil
}

func validateBody(schema *jsonschema.Schema, body []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var document any
	if err := decoder.Decode(&document); err != nil {
		return invalidBody()
	}
	if decoder.More() {
		return invalidBody()
	}
	object, ok := document.(map[string]any)
	if !ok {
		return invalidBody()
	}

	if err := schema.Validate(object); err != nil {
		return toValidationError(err)
	}
	return nil
}

func invalidBody() error {
	return &model.ValidationError{Message: msg.GetMessage("todo.error.invalid-body")}
}

// toValidationError reports the first failing leaf, ordered by instance location
// so the same input always yields the same message.
func toValidationError(err error) error {
	var schemaErr *jsonschema.ValidationError
	if !errors.As(err, &schemaErr) {
		return &model.ValidationError{Message: err.Error()}
	}

	leaves := leafErrors(schemaErr, nil)
	slices.SortStableFunc(leaves, func(a, b *jsonschema.ValidationError) int {
		return strings.Compare(a.InstanceLocation, b.InstanceLocation)
	})
	leaf := leaves[0]

	field := fieldName(leaf.InstanceLocation)
	switch keyword(leaf.KeywordLocation) {
	case "additionalProperties":
		unknown := firstQuoted(leaf.Message)
		return &model.ValidationError{Field: unknown, Message: msg.GetMessage("todo.error.unknown-field", unknown)}
	case "required":
		missing := firstQuoted(leaf.Message)
		return &model.ValidationError{Field: missing, Message: msg.GetMessage("todo.error.required", missing)}
	case "minLength":
		return &model.ValidationError{Field: field, Message: msg.GetMessage("todo.error.required", field)}
	case "enum":
		if field == statusParam {
			return &model.ValidationError{Field: field, Message: msg.GetMessage("todo.error.invalid-status")}
		}
	}
	return &model.ValidationError{Field: field, Message: msg.GetMessage("todo.error.invalid-field", field, leaf.Message)}
}

func leafErrors(err *jsonschema.ValidationError, leaves []*jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return append(leaves, err)
	}
	for _, cause := range err.Causes {
		leaves = leafErrors(cause, leaves)
	}
	return leaves
}

// fieldName maps "/status/1" to "status".
func fieldName(instanceLocation string) string {
	trimmed := strings.TrimPrefix(instanceLocation, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return trimmed
}

func keyword(keywordLocation string) string {
	return keywordLocation[strings.LastIndexByte(keywordLocation, '/')+1:]
}

func firstQuoted(message string) string {
	match := quoted.FindStringSubmatch(message)
	if match == nil {
		return ""
	}
	return match[1]
}
