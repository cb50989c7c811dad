package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// TaskService is the task lifecycle engine: it owns creation, diffed updates,
// the close transition, assignment and comments, and is the sole writer of
// history entries. Every mutating call takes the acting user explicitly.
type TaskService struct {
	tasks *repository.TaskRepository
	users *repository.UserRepository
}

func NewTaskService(tasks *repository.TaskRepository, users *repository.UserRepository) *TaskService {
	return &TaskService{
		tasks: tasks,
		users: users,
	}
}

// TaskPatch is a partial update: nil means the field was not submitted.
type TaskPatch struct {
	Title       *string
	Description *string
	Type        *string
	Status      *string
}

// fieldChange is one pending history tuple produced by diffing a patch
// against the stored task.
type fieldChange struct {
	field string
	from  string
	to    string
}

func (s *TaskService) CreateTask(ctx context.Context, actingUserID, title, description, taskType string) (*model.Task, error) {
	task, err := s.tasks.CreateTask(ctx, actingUserID, title, description, constants.TaskType(taskType))
	if err != nil {
		return nil, err
	}

	// Creation is not a "change": no history entry.
	return s.tasks.FindView(ctx, task.ID)
}

func (s *TaskService) ViewTask(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.tasks.FindView(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// ListTasks validates the filter parameters, aggregating every violation into
// one response, then runs the filtered query.
func (s *TaskService) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	var codes []string

	if filter.Type != "" && !constants.ValidType(filter.Type) {
		codes = append(codes, "INVALID_TYPE")
	}
	if filter.Status != "" && !constants.ValidStatus(filter.Status) {
		codes = append(codes, "INVALID_STATUS")
	}
	if filter.CreatedBy != "" {
		if _, err := s.users.FindByID(ctx, filter.CreatedBy); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			codes = append(codes, "USER_NOT_FOUND")
		}
	}

	if len(codes) > 0 {
		return nil, apperrors.Validation(codes...)
	}

	return s.tasks.List(ctx, filter)
}

// UpdateTask applies a partial update. Each submitted field whose value
// differs from the stored one yields exactly one history entry, written
// before the task row itself changes. Closing is rejected here: the close
// transition has its own operation.
func (s *TaskService) UpdateTask(ctx context.Context, actingUserID, taskID string, patch TaskPatch) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if patch.Status != nil && *patch.Status == string(constants.StatusClosed) {
		return nil, apperrors.ErrCanNotUpdateToClose
	}

	if task.Closed() {
		return nil, apperrors.ErrTaskClosed
	}

	changes, fields := diffTask(task, patch)

	now := time.Now().UTC()
	for _, change := range changes {
		entry := &model.TaskHistory{
			TaskID:      task.ID,
			Field:       change.field,
			ChangedFrom: change.from,
			ChangedTo:   change.to,
			ChangedOn:   now,
			ChangedBy:   actingUserID,
		}
		if err := s.tasks.AppendHistory(ctx, entry); err != nil {
			return nil, err
		}
	}

	if err := s.tasks.UpdateFields(ctx, task.ID, fields); err != nil {
		return nil, err
	}

	return s.tasks.FindView(ctx, task.ID)
}

// diffTask evaluates the patch against the stored task as an explicit ordered
// tuple list. Fields absent from the patch, or equal to the current value,
// contribute neither history nor an update column.
func diffTask(task *model.Task, patch TaskPatch) ([]fieldChange, map[string]any) {
	var changes []fieldChange
	fields := map[string]any{}

	if patch.Title != nil && *patch.Title != task.Title {
		changes = append(changes, fieldChange{"title", task.Title, *patch.Title})
		fields["title"] = *patch.Title
	}
	if patch.Description != nil && *patch.Description != task.Description {
		changes = append(changes, fieldChange{"description", task.Description, *patch.Description})
		fields["description"] = *patch.Description
	}
	if patch.Type != nil && *patch.Type != string(task.Type) {
		changes = append(changes, fieldChange{"type", string(task.Type), *patch.Type})
		fields["type"] = *patch.Type
	}
	if patch.Status != nil && *patch.Status != string(task.Status) {
		changes = append(changes, fieldChange{"status", string(task.Status), *patch.Status})
		fields["status"] = *patch.Status
	}

	return changes, fields
}

// CloseTask performs the one-way transition into the terminal state. Close is
// not idempotent: a second attempt fails.
func (s *TaskService) CloseTask(ctx context.Context, actingUserID, taskID string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if task.Closed() {
		return nil, apperrors.ErrTaskAlreadyClosed
	}

	now := time.Now().UTC()
	err = s.tasks.UpdateFields(ctx, task.ID, map[string]any{
		"status":    constants.StatusClosed,
		"closed_on": now,
		"closed_by": actingUserID,
	})
	if err != nil {
		return nil, err
	}

	entry := &model.TaskHistory{
		TaskID:      task.ID,
		Field:       "status",
		ChangedFrom: string(task.Status),
		ChangedTo:   string(constants.StatusClosed),
		ChangedOn:   now,
		ChangedBy:   actingUserID,
	}
	if err := s.tasks.AppendHistory(ctx, entry); err != nil {
		return nil, err
	}

	return s.tasks.FindView(ctx, task.ID)
}

// AssignTask inserts the assignment optimistically and translates the store's
// uniqueness violation into the duplicate-assignment outcome, so two racing
// requests for the same pair cannot both succeed.
func (s *TaskService) AssignTask(ctx context.Context, actingUserID, taskID, assignedToID string) (*model.TaskAssignee, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	assignee, err := s.users.FindByID(ctx, assignedToID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	assignment := &model.TaskAssignee{
		TaskID:     task.ID,
		AssignedTo: assignee.ID,
		AssignedBy: actingUserID,
	}
	if err := s.tasks.CreateAssignment(ctx, assignment); err != nil {
		if errors.Is(err, repository.ErrDuplicateAssignment) {
			return nil, apperrors.ErrUserAlreadyAssigned
		}
		return nil, err
	}

	entry := &model.TaskHistory{
		TaskID:      task.ID,
		Field:       constants.HistoryAddedAssignee,
		ChangedFrom: "",
		ChangedTo:   assignee.Name,
		ChangedOn:   time.Now().UTC(),
		ChangedBy:   actingUserID,
	}
	if err := s.tasks.AppendHistory(ctx, entry); err != nil {
		return nil, err
	}

	return s.tasks.FindAssignment(ctx, assignment.ID)
}

// UnassignTask removes the assignment row and records the event. The
// assignee's name goes into history, so it is captured before the delete.
func (s *TaskService) UnassignTask(ctx context.Context, actingUserID string, assignmentID uint) error {
	assignment, err := s.tasks.FindAssignment(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return err
	}

	assigneeName := ""
	if assignment.Assignee != nil {
		assigneeName = assignment.Assignee.Name
	}

	if err := s.tasks.DeleteAssignment(ctx, assignment.ID); err != nil {
		return err
	}

	entry := &model.TaskHistory{
		TaskID:      assignment.TaskID,
		Field:       constants.HistoryRemovedAssignee,
		ChangedFrom: "",
		ChangedTo:   assigneeName,
		ChangedOn:   time.Now().UTC(),
		ChangedBy:   actingUserID,
	}
	return s.tasks.AppendHistory(ctx, entry)
}

func (s *TaskService) CreateComment(ctx context.Context, actingUserID, taskID, text string) (*model.TaskComment, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	comment := &model.TaskComment{
		TaskID:    task.ID,
		Text:      text,
		CreatedOn: time.Now().UTC(),
		CreatedBy: actingUserID,
	}
	if err := s.tasks.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	// Comments are not audited: no history entry, unlike assignments.
	return s.tasks.FindComment(ctx, comment.ID)
}

func (s *TaskService) DeleteComment(ctx context.Context, commentID uint) error {
	comment, err := s.tasks.FindComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return err
	}

	return s.tasks.DeleteComment(ctx, comment.ID)
}
