package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

// ErrDuplicateAssignment is the store-level uniqueness violation on the
// (task, assigned_to) pair, translated away from any driver-specific error.
var ErrDuplicateAssignment = errors.New("assignment already exists")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, actingUserID, title, description string, taskType constants.TaskType) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Type:        taskType,
		Status:      constants.StatusOpen,
		CreatedOn:   time.Now().UTC(),
		CreatedBy:   actingUserID,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindView loads a task with its full relational closure: creator, closer,
// ordered history, assignees and comments, each with nested user identities.
func (r *TaskRepository) FindView(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Closer").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_histories.id asc")
		}).
		Preload("History.Author").
		Preload("Assignees.Assignee").
		Preload("Assignees.Assigner").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_comments.id asc")
		}).
		Preload("Comments.Author").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskFilter narrows the list query. Zero values mean "no filter";
// Assigned distinguishes unset (nil) from explicit true/false.
type TaskFilter struct {
	Type      string
	Status    string
	CreatedBy string
	Assigned  *bool
}

func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Closer").
		Preload("Assignees.Assignee").
		Preload("Assignees.Assigner").
		Order("created_on desc")

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatedBy != "" {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}
	if filter.Assigned != nil {
		if *filter.Assigned {
			query = query.Where("id IN (SELECT task_id FROM task_assignees)")
		} else {
			query = query.Where("id NOT IN (SELECT task_id FROM task_assignees)")
		}
	}

	var tasks []model.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateFields applies a partial update: only the given columns change.
func (r *TaskRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *TaskRepository) AppendHistory(ctx context.Context, entry *model.TaskHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// CreateAssignment inserts optimistically; the uniqueness constraint on the
// (task, assigned_to) pair does the duplicate detection, never a pre-check.
func (r *TaskRepository) CreateAssignment(ctx context.Context, assignment *model.TaskAssignee) error {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAssignment
		}
		return err
	}
	return nil
}

func (r *TaskRepository) FindAssignment(ctx context.Context, id uint) (*model.TaskAssignee, error) {
	var assignment model.TaskAssignee
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Assigner").
		First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *TaskRepository) DeleteAssignment(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TaskAssignee{}, "id = ?", id).Error
}

func (r *TaskRepository) CreateComment(ctx context.Context, comment *model.TaskComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *TaskRepository) FindComment(ctx context.Context, id uint) (*model.TaskComment, error) {
	var comment model.TaskComment
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *TaskRepository) DeleteComment(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TaskComment{}, "id = ?", id).Error
}
