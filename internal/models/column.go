package models

import "fmt"

// MaxColumns is the number of lanes on the board
const MaxColumns = 5

// DefaultColumnNames are seeded when no column setting exists
var DefaultColumnNames = []string{"Backlog", "To Do", "In Progress", "Review", "Done"}

// PlaceholderColumnName names an unconfigured lane
func PlaceholderColumnName(index int) string {
	return fmt.Sprintf("Column %d", index+1)
}

// Board is today's tasks grouped by column index
type Board struct {
	Columns []string
	Tasks   map[int][]*Task
}
