package components

const (
	// ColumnContentWidth is the width inside a column's border and padding
	ColumnContentWidth = 30

	// SidebarContentWidth is the width inside the sidebar's border and padding
	SidebarContentWidth = 20

	// TaskCardHeight is the height of a compact card including its border
	TaskCardHeight = 4

	// DetailedCardHeight adds the checklist line
	DetailedCardHeight = 5

	taskTitleMaxLength = ColumnContentWidth - 6
)
