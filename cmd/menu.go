package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kherrera/taskdeck/internal/adapters/tui"
	"github.com/kherrera/taskdeck/internal/domain"
	"github.com/kherrera/taskdeck/internal/services"
)

// menuCmd represents the menu command; it is also what a bare "taskdeck"
// invocation runs.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Long:  `Open an interactive menu for managing tasks with arrow-key pickers.`,
	RunE:  runMenu,
}

// runMenu implements the interactive menu loop for the bare "taskdeck" command.
func runMenu(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	for {
		count := taskService.Store().Len()
		footer := fmt.Sprintf("%d task(s) · %s", count, taskService.Store().Path())

		menuItems := []tui.PickerItem{
			{Label: "Add task", Desc: "Create a new task"},
			{Label: "List tasks", Desc: "Show the task list"},
			{Label: "View task", Desc: "Show one task in full"},
			{Label: "Complete task", Desc: "Mark a task as completed"},
			{Label: "Update task", Desc: "Edit fields of a task"},
			{Label: "Search", Desc: "Find tasks by keyword"},
			{Label: "Filter by status", Desc: "List only one status"},
			{Label: "Delete task", Desc: "Remove a task"},
			{Label: "Archive", Desc: "Move completed tasks to the archive"},
			{Label: "Exit", Desc: "Leave the menu"},
		}
		result := tui.RunPicker("Taskdeck:", menuItems, footer, &appConfig.Theme)
		if result.Aborted || result.Index == len(menuItems)-1 {
			return nil
		}

		var err error
		switch result.Index {
		case 0:
			err = menuAddTask(ctx)
		case 1:
			menuListTasks(ctx)
		case 2:
			menuViewTask()
		case 3:
			err = menuCompleteTask(ctx)
		case 4:
			err = menuUpdateTask(ctx)
		case 5:
			menuSearchTasks(ctx)
		case 6:
			menuFilterByStatus(ctx)
		case 7:
			err = menuDeleteTask(ctx)
		case 8:
			err = menuArchive(ctx)
		}
		if err != nil {
			// Surface the failure and return to the menu rather than exiting.
			fmt.Printf("⚠️  %v\n\n", err)
		}
	}
}

func menuAddTask(ctx context.Context) error {
	titleResult := tui.RunTextPrompt("Title:", "what needs doing?", &appConfig.Theme)
	if titleResult.Aborted || titleResult.Value == "" {
		return nil
	}

	descResult := tui.RunTextPrompt("Description:", "Enter to skip", &appConfig.Theme)
	if descResult.Aborted {
		return nil
	}

	dueResult := tui.RunTextPrompt("Due date (YYYY-MM-DD):", "Enter to skip", &appConfig.Theme)
	if dueResult.Aborted {
		return nil
	}

	priorityItems := make([]tui.PickerItem, 0, 3)
	for _, p := range domain.Priorities() {
		priorityItems = append(priorityItems, tui.PickerItem{Label: p.Name()})
	}
	priorityResult := tui.RunPicker("Priority:", priorityItems, "", &appConfig.Theme)
	if priorityResult.Aborted {
		return nil
	}

	task, err := taskService.AddTask(ctx, services.AddTaskRequest{
		Title:       titleResult.Value,
		Description: descResult.Value,
		DueDate:     dueResult.Value,
		Priority:    domain.Priorities()[priorityResult.Index].Name(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("✅ Task added: %s\n\n", task.Title)
	return nil
}

func menuListTasks(ctx context.Context) {
	tasks := taskService.ListTasks(ctx, services.ListTasksRequest{})
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		fmt.Println()
		return
	}
	fmt.Printf("📋 Tasks (%d):\n\n", len(tasks))
	printTaskList(tasks)
	fmt.Println()
}

// pickTask runs the fuzzy filter picker over tasks matching keep and
// returns the selected task's store index.
func pickTask(title string, keep func(*domain.Task) bool) (int, bool) {
	tasks := taskService.ListTasks(context.Background(), services.ListTasksRequest{})

	var items []tui.PickerItem
	var indices []int
	for i, task := range tasks {
		if keep != nil && !keep(task) {
			continue
		}
		items = append(items, tui.PickerItem{
			Label: task.Title,
			Desc:  task.Status.Display(),
		})
		indices = append(indices, i)
	}
	if len(items) == 0 {
		return 0, false
	}

	result := tui.RunFilterPicker(title, items, &appConfig.Theme)
	if result.Aborted {
		return 0, false
	}
	return indices[result.Index], true
}

func menuViewTask() {
	index, ok := pickTask("View:", nil)
	if !ok {
		fmt.Println("No tasks found.")
		fmt.Println()
		return
	}

	task, _ := taskService.GetTask(index)
	fmt.Println(task.Render())
	fmt.Println()
}

func menuFilterByStatus(ctx context.Context) {
	var items []tui.PickerItem
	for _, s := range domain.Statuses() {
		items = append(items, tui.PickerItem{Label: s.Display()})
	}
	result := tui.RunPicker("Status:", items, "", &appConfig.Theme)
	if result.Aborted {
		return
	}

	status := domain.Statuses()[result.Index]
	tasks := taskService.ListTasks(ctx, services.ListTasksRequest{Status: &status})
	if len(tasks) == 0 {
		fmt.Printf("No %s tasks.\n\n", status.Display())
		return
	}
	fmt.Printf("📋 %s tasks (%d):\n\n", status.Display(), len(tasks))
	printTaskList(tasks)
	fmt.Println()
}

func menuCompleteTask(ctx context.Context) error {
	index, ok := pickTask("Complete:", func(t *domain.Task) bool { return !t.IsCompleted() })
	if !ok {
		fmt.Println("No pending tasks.")
		fmt.Println()
		return nil
	}

	task, ok, err := taskService.CompleteTask(ctx, index)
	if err != nil {
		return err
	}
	if ok {
		fmt.Printf("✅ Task completed: %s\n\n", task.Title)
	}
	return nil
}

func menuUpdateTask(ctx context.Context) error {
	index, ok := pickTask("Update:", nil)
	if !ok {
		fmt.Println("No tasks found.")
		fmt.Println()
		return nil
	}

	fieldItems := []tui.PickerItem{
		{Label: "Title"},
		{Label: "Description"},
		{Label: "Due date", Desc: "YYYY-MM-DD, empty clears"},
		{Label: "Priority", Desc: "LOW / MEDIUM / HIGH"},
		{Label: "Status", Desc: "Pending / In Progress / Completed"},
	}
	fieldResult := tui.RunPicker("Field:", fieldItems, "", &appConfig.Theme)
	if fieldResult.Aborted {
		return nil
	}

	var patch domain.TaskPatch
	switch fieldResult.Index {
	case 0, 1, 2:
		prompt := fieldItems[fieldResult.Index].Label + ":"
		textResult := tui.RunTextPrompt(prompt, "", &appConfig.Theme)
		if textResult.Aborted {
			return nil
		}
		switch fieldResult.Index {
		case 0:
			if textResult.Value == "" {
				return fmt.Errorf("title cannot be empty")
			}
			patch.Title = &textResult.Value
		case 1:
			patch.Description = &textResult.Value
		case 2:
			patch.DueDate = &textResult.Value
		}
	case 3:
		var items []tui.PickerItem
		for _, p := range domain.Priorities() {
			items = append(items, tui.PickerItem{Label: p.Name()})
		}
		result := tui.RunPicker("Priority:", items, "", &appConfig.Theme)
		if result.Aborted {
			return nil
		}
		name := domain.Priorities()[result.Index].Name()
		patch.Priority = &name
	case 4:
		var items []tui.PickerItem
		for _, s := range domain.Statuses() {
			items = append(items, tui.PickerItem{Label: s.Display()})
		}
		result := tui.RunPicker("Status:", items, "", &appConfig.Theme)
		if result.Aborted {
			return nil
		}
		display := domain.Statuses()[result.Index].Display()
		patch.Status = &display
	}

	ok, err := taskService.UpdateTask(ctx, index, patch)
	if err != nil {
		return err
	}
	if ok {
		task, _ := taskService.GetTask(index)
		fmt.Printf("✅ Task updated: %s\n\n", task.Title)
	}
	return nil
}

func menuSearchTasks(ctx context.Context) {
	keywordResult := tui.RunTextPrompt("Search:", "keyword", &appConfig.Theme)
	if keywordResult.Aborted || keywordResult.Value == "" {
		return
	}

	tasks := taskService.SearchTasks(ctx, services.SearchTasksRequest{Keyword: keywordResult.Value})
	if len(tasks) == 0 {
		fmt.Printf("No tasks matching %q.\n\n", keywordResult.Value)
		return
	}
	fmt.Printf("🔍 Matches (%d):\n\n", len(tasks))
	printTaskList(tasks)
	fmt.Println()
}

func menuDeleteTask(ctx context.Context) error {
	index, ok := pickTask("Delete:", nil)
	if !ok {
		fmt.Println("No tasks found.")
		fmt.Println()
		return nil
	}

	task, _ := taskService.GetTask(index)
	confirmItems := []tui.PickerItem{
		{Label: "No", Desc: "Keep the task"},
		{Label: "Yes", Desc: fmt.Sprintf("Delete %q", task.Title)},
	}
	confirmResult := tui.RunPicker("Are you sure?", confirmItems, "", &appConfig.Theme)
	if confirmResult.Aborted || confirmResult.Index == 0 {
		return nil
	}

	if _, err := taskService.DeleteTask(ctx, index); err != nil {
		return err
	}
	fmt.Printf("✅ Task '%s' deleted.\n\n", task.Title)
	return nil
}

func menuArchive(ctx context.Context) error {
	arch, err := archiveOpen()
	if err != nil {
		return err
	}
	defer arch.Close()

	moved, err := taskService.ArchiveCompleted(ctx, arch)
	if err != nil {
		return err
	}
	if moved == 0 {
		fmt.Println("No completed tasks to archive.")
	} else {
		fmt.Printf("🗄  Archived %d completed task(s).\n", moved)
	}
	fmt.Println()
	return nil
}
