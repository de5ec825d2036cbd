package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strings"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/pkg/http"
)

const todosPath = "/todos"

// APIError is a non 2xx answer from the todo API
type APIError struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// todoAPIGatewayImpl implements the TodoAPIGateway interface
type todoAPIGatewayImpl struct {
	httpClient *http.Client
}

// NewTodoAPIGateway creates a new instance of TodoAPIGateway with HTTP client
func NewTodoAPIGateway(baseUrl string, clientOptions http.ClientOptions) TodoAPIGateway {
	return &todoAPIGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

func (g *todoAPIGatewayImpl) ListTodos(ctx context.Context, statuses []entity.TodoStatus) ([]entity.Todo, error) {
	query := url.Values{}
	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = s.String()
		}
		query.Set("status", strings.Join(values, ","))
	}

	var todos []entity.Todo
	_, err := g.httpClient.Request().
		WithMethod(nethttp.MethodGet).
		WithPath(todosPath).
		WithQueryParams(query).
		WithSuccessResp(&todos).
		Send(ctx)
	if err != nil {
		return nil, toAPIError(err)
	}
	return todos, nil
}

func (g *todoAPIGatewayImpl) CreateTodo(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error) {
	var created entity.Todo
	_, err := g.httpClient.Request().
		WithMethod(nethttp.MethodPost).
		WithPath(todosPath).
		WithBody(dto).
		WithSuccessResp(&created).
		Send(ctx)
	if err != nil {
		return nil, toAPIError(err)
	}
	return &created, nil
}

func (g *todoAPIGatewayImpl) UpdateTodoStatus(ctx context.Context, id string, status entity.TodoStatus) (*entity.Todo, error) {
	var updated entity.Todo
	_, err := g.httpClient.Request().
		WithMethod(nethttp.MethodPatch).
		WithPath(todosPath + "/" + url.PathEscape(id) + "/status").
		WithBody(model.UpdateTodoStatusDTO{Status: status}).
		WithSuccessResp(&updated).
		Send(ctx)
	if err != nil {
		return nil, toAPIError(err)
	}
	return &updated, nil
}

// toAPIError decodes the {"error","field"} body the API answers with.
func toAPIError(err error) error {
	var statusErr *http.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	var body struct {
		Error string  `json:"error"`
		Field *string `json:"field"`
	}
	if jsonErr := json.Unmarshal(statusErr.Body, &body); jsonErr != nil || body.Error == "" {
		return err
	}

	apiErr := &APIError{StatusCode: statusErr.StatusCode, Message: body.Error}
	if body.Field != nil {
		apiErr.Field = *body.Field
	}
	return apiErr
}
