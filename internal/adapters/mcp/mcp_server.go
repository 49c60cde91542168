// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/services"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server *server.MCPServer
	tasks  *services.TaskService
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(tasks *services.TaskService) *Server {
	s := &Server{
		tasks: tasks,
	}

	// Create the MCP server
	s.server = server.NewMCPServer(
		"taskdeck",
		"1.0.0",
		server.WithLogging(),
	)

	// Register tools
	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	// Tool: add_task
	addTaskTool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a new task to the task list"),
		mcp.WithString(
			"title",
			mcp.Required(),
			mcp.Description("The title of the task"),
		),
		mcp.WithString(
			"description",
			mcp.Description("Optional description of the task"),
		),
		mcp.WithString(
			"due_date",
			mcp.Description("Optional due date in YYYY-MM-DD format"),
		),
		mcp.WithString(
			"priority",
			mcp.Description("Optional priority"),
			mcp.Enum("LOW", "MEDIUM", "HIGH"),
		),
	)
	s.server.AddTool(addTaskTool, s.handleAddTask)

	// Tool: list_tasks
	listTasksTool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List all tasks, optionally filtered by status"),
		mcp.WithString(
			"status",
			mcp.Description("Filter tasks by status"),
			mcp.Enum("Pending", "In Progress", "Completed"),
		),
	)
	s.server.AddTool(listTasksTool, s.handleListTasks)

	// Tool: search_tasks
	searchTasksTool := mcp.NewTool(
		"search_tasks",
		mcp.WithDescription("Search tasks by keyword in title and description"),
		mcp.WithString(
			"keyword",
			mcp.Required(),
			mcp.Description("The keyword to search for"),
		),
		mcp.WithBoolean(
			"fuzzy",
			mcp.Description("Fuzzy-match titles instead of substring search"),
		),
	)
	s.server.AddTool(searchTasksTool, s.handleSearchTasks)

	// Tool: get_task
	getTaskTool := mcp.NewTool(
		"get_task",
		mcp.WithDescription("Get a single task by its 1-based number"),
		mcp.WithNumber(
			"number",
			mcp.Required(),
			mcp.Description("The task number as shown by list_tasks"),
		),
	)
	s.server.AddTool(getTaskTool, s.handleGetTask)

	// Tool: update_task
	updateTaskTool := mcp.NewTool(
		"update_task",
		mcp.WithDescription("Update one or more fields of a task"),
		mcp.WithNumber(
			"number",
			mcp.Required(),
			mcp.Description("The task number as shown by list_tasks"),
		),
		mcp.WithString(
			"title",
			mcp.Description("New title"),
		),
		mcp.WithString(
			"description",
			mcp.Description("New description"),
		),
		mcp.WithString(
			"due_date",
			mcp.Description("New due date in YYYY-MM-DD format (empty clears it)"),
		),
		mcp.WithString(
			"priority",
			mcp.Description("New priority"),
			mcp.Enum("LOW", "MEDIUM", "HIGH"),
		),
		mcp.WithString(
			"status",
			mcp.Description("New status"),
			mcp.Enum("Pending", "In Progress", "Completed"),
		),
	)
	s.server.AddTool(updateTaskTool, s.handleUpdateTask)

	// Tool: complete_task
	completeTaskTool := mcp.NewTool(
		"complete_task",
		mcp.WithDescription("Mark a task as completed"),
		mcp.WithNumber(
			"number",
			mcp.Required(),
			mcp.Description("The task number as shown by list_tasks"),
		),
	)
	s.server.AddTool(completeTaskTool, s.handleCompleteTask)

	// Tool: delete_task
	deleteTaskTool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task"),
		mcp.WithNumber(
			"number",
			mcp.Required(),
			mcp.Description("The task number as shown by list_tasks"),
		),
	)
	s.server.AddTool(deleteTaskTool, s.handleDeleteTask)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	// Start the stdio server
	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// taskPayload renders a task as the JSON shape shared by all tool results.
// The number is the user-facing 1-based task number.
func taskPayload(number int, task *domain.Task) map[string]interface{} {
	payload := map[string]interface{}{
		"number":     number,
		"title":      task.Title,
		"status":     task.Status.Display(),
		"priority":   task.Priority.Name(),
		"created_at": task.CreatedAt,
	}
	if task.Description != "" {
		payload["description"] = task.Description
	}
	if task.DueDate != "" {
		payload["due_date"] = task.DueDate
	}
	if task.CompletedAt != "" {
		payload["completed_at"] = task.CompletedAt
	}
	return payload
}

// taskNumber extracts the required 1-based "number" argument and converts
// it to a 0-based index.
func taskNumber(request mcp.CallToolRequest) (int, error) {
	if n := request.GetFloat("number", 0); n >= 1 {
		return int(n) - 1, nil
	}
	// JSON numbers arrive as float64, but tolerate string input too
	if raw := request.GetString("number", ""); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			return n - 1, nil
		}
	}
	return 0, fmt.Errorf("number must be a positive integer")
}

// handleAddTask handles the add_task tool.
func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title is required: " + err.Error()), nil
	}

	task, err := s.tasks.AddTask(ctx, services.AddTaskRequest{
		Title:       title,
		Description: request.GetString("description", ""),
		DueDate:     request.GetString("due_date", ""),
		Priority:    request.GetString("priority", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add task: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(taskPayload(s.tasks.Store().Len(), task), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleListTasks handles the list_tasks tool.
func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := services.ListTasksRequest{}
	statusFilter := request.GetString("status", "")
	if statusFilter != "" {
		status, err := domain.ParseStatusDisplay(statusFilter)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid status: %v", err)), nil
		}
		req.Status = &status
	}

	all := s.tasks.ListTasks(ctx, services.ListTasksRequest{})
	numbers := make(map[*domain.Task]int, len(all))
	for i, task := range all {
		numbers[task] = i + 1
	}

	tasks := s.tasks.ListTasks(ctx, req)
	taskList := make([]map[string]interface{}, 0, len(tasks))
	for _, task := range tasks {
		taskList = append(taskList, taskPayload(numbers[task], task))
	}

	result := map[string]interface{}{
		"tasks":       taskList,
		"total_count": len(taskList),
	}
	if statusFilter != "" {
		result["filter_status"] = statusFilter
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleSearchTasks handles the search_tasks tool.
func (s *Server) handleSearchTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := request.RequireString("keyword")
	if err != nil {
		return mcp.NewToolResultError("keyword is required: " + err.Error()), nil
	}

	all := s.tasks.ListTasks(ctx, services.ListTasksRequest{})
	numbers := make(map[*domain.Task]int, len(all))
	for i, task := range all {
		numbers[task] = i + 1
	}

	tasks := s.tasks.SearchTasks(ctx, services.SearchTasksRequest{
		Keyword: keyword,
		Fuzzy:   request.GetBool("fuzzy", false),
	})
	taskList := make([]map[string]interface{}, 0, len(tasks))
	for _, task := range tasks {
		taskList = append(taskList, taskPayload(numbers[task], task))
	}

	result := map[string]interface{}{
		"keyword":     keyword,
		"tasks":       taskList,
		"total_count": len(taskList),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetTask handles the get_task tool.
func (s *Server) handleGetTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := taskNumber(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	task, ok := s.tasks.GetTask(index)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("task not found: %d", index+1)), nil
	}

	jsonData, err := json.MarshalIndent(taskPayload(index+1, task), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleUpdateTask handles the update_task tool.
func (s *Server) handleUpdateTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := taskNumber(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var patch domain.TaskPatch
	args := request.GetArguments()
	if _, set := args["title"]; set {
		title := request.GetString("title", "")
		if title == "" {
			return mcp.NewToolResultError("title cannot be empty"), nil
		}
		patch.Title = &title
	}
	if _, set := args["description"]; set {
		description := request.GetString("description", "")
		patch.Description = &description
	}
	if _, set := args["due_date"]; set {
		dueDate := request.GetString("due_date", "")
		patch.DueDate = &dueDate
	}
	if _, set := args["priority"]; set {
		priority := request.GetString("priority", "")
		patch.Priority = &priority
	}
	if _, set := args["status"]; set {
		status := request.GetString("status", "")
		patch.Status = &status
	}

	if patch.IsEmpty() {
		return mcp.NewToolResultError("nothing to update: set at least one field"), nil
	}

	ok, err := s.tasks.UpdateTask(ctx, index, patch)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update task: %v", err)), nil
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("task not found: %d", index+1)), nil
	}

	task, _ := s.tasks.GetTask(index)
	jsonData, err := json.MarshalIndent(taskPayload(index+1, task), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleCompleteTask handles the complete_task tool.
func (s *Server) handleCompleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := taskNumber(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	task, ok, err := s.tasks.CompleteTask(ctx, index)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to complete task: %v", err)), nil
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("task not found: %d", index+1)), nil
	}

	jsonData, err := json.MarshalIndent(taskPayload(index+1, task), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleDeleteTask handles the delete_task tool.
func (s *Server) handleDeleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := taskNumber(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	task, ok := s.tasks.GetTask(index)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("task not found: %d", index+1)), nil
	}
	title := task.Title

	ok, err = s.tasks.DeleteTask(ctx, index)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete task: %v", err)), nil
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("task not found: %d", index+1)), nil
	}

	result := map[string]interface{}{
		"deleted": true,
		"number":  index + 1,
		"title":   title,
	}
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
