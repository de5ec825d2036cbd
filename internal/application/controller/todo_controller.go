package controller

import (
	"github.com/labstack/echo/v4"
	"io"
	"net/http"
	"todo-api/internal/application/validation"
	"todo-api/internal/domain/usecase/todo"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.List)
	controller.api.POST("/todos", controller.Create)
	controller.api.PATCH("/todos/:id/status", controller.UpdateStatus)
}

// List godoc
// @Summary List todos
// @Description List todos newest first. Without a status filter only New and In Progress todos are returned.
// @Tags todos
// @Produce json
// @Param status query []string false "Statuses, repeated or comma separated" collectionFormat(multi)
// @Success 200 {array} entity.Todo "Matching todos"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [get]
func (controller *TodoController) List(c echo.Context) error {
	filter, err := validation.FilterTodos(c.QueryParams())
	if err != nil {
		return errorResponse(c, err)
	}

	todos, err := controller.useCase.List(c.Request().Context(), filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Create godoc
// @Summary Create a todo
// @Description Create a todo. status defaults to New and description to null.
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} entity.Todo "Created todo"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errorResponse(c, err)
	}

	dto, err := validation.CreateTodo(body)
	if err != nil {
		return errorResponse(c, err)
	}

	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateStatus godoc
// @Summary Update todo status
// @Description Set the status of an existing todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo id (uuid)"
// @Param status body model.UpdateTodoStatusDTO true "New status"
// @Success 200 {object} entity.Todo "Updated todo"
// @Failure 400 {object} map[string]string "Invalid id or status"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/{id}/status [patch]
func (controller *TodoController) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	if err := validation.TodoID(id); err != nil {
		return errorResponse(c, err)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errorResponse(c, err)
	}

	dto, err := validation.UpdateTodoStatus(body)
	if err != nil {
		return errorResponse(c, err)
	}

	updated, err := controller.useCase.UpdateStatus(c.Request().Context(), id, dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}
