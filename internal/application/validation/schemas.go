package validation

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"strings"
)

const (
	createTodoSchemaURL   = "schema://todo-api/create-todo.json"
	updateStatusSchemaURL = "schema://todo-api/update-todo-status.json"
	filterTodosSchemaURL  = "schema://todo-api/filter-todos.json"
)

const createTodoSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"title": {"type": "string", "minLength": 1, "maxLength": 255},
		"description": {"type": ["string", "null"]},
		"status": {"enum": ["New", "In Progress", "Completed", null]}
	},
	"required": ["title"],
	"additionalProperties": false
}`

const updateStatusSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"status": {"enum": ["New", "In Progress", "Completed"]}
	},
	"required": ["status"],
	"additionalProperties": false
}`

const filterTodosSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"status": {
			"type": "array",
			"items": {"enum": ["New", "In Progress", "Completed"]}
		}
	},
	"additionalProperties": false
}`

var (
	createTodo   = mustCompile(createTodoSchemaURL, createTodoSchema)
	updateStatus = mustCompile(updateStatusSchemaURL, updateStatusSchema)
	filterTodos  = mustCompile(filterTodosSchemaURL, filterTodosSchema)
)

func mustCompile(url, schema string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(url, strings.NewReader(schema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(url)
}
