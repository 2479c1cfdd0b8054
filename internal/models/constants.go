package models

// DefaultColumns are created for every new project, in order
var DefaultColumns = []string{"To Do", "In Progress", "Done"}

// Name length limits shared by the services
const (
	MaxProjectNameLength = 100
	MaxColumnNameLength  = 50
	MaxTaskTitleLength   = 255
	MaxLabelNameLength   = 50
	MaxChecklistLength   = 500
)
