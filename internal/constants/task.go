package constants

type TaskStatus string

const (
	StatusOpen    TaskStatus = "open"
	StatusInDev   TaskStatus = "in_dev"
	StatusBlocked TaskStatus = "blocked"
	StatusInQA    TaskStatus = "in_qa"
	StatusClosed  TaskStatus = "closed"
)

type TaskType string

const (
	TypeFeature TaskType = "feature"
	TypeBugfix  TaskType = "bugfix"
	TypeHotfix  TaskType = "hotfix"
)

func ValidStatus(s string) bool {
	switch TaskStatus(s) {
	case StatusOpen, StatusInDev, StatusBlocked, StatusInQA, StatusClosed:
		return true
	}
	return false
}

func ValidType(t string) bool {
	switch TaskType(t) {
	case TypeFeature, TypeBugfix, TypeHotfix:
		return true
	}
	return false
}

// History field labels for assignment events. Regular field changes use the
// task field name itself (title, description, type, status).
const (
	HistoryAddedAssignee   = "added_assignee"
	HistoryRemovedAssignee = "removed_assignee"
)
