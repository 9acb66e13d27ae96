package command

import (
	"fmt"
	"strings"
)

// Usage returns the command reference for prog.
func Usage(prog string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Adding a new task\n")
	fmt.Fprintf(&b, "%s add \"Buy groceries\"\n\n", prog)
	fmt.Fprintf(&b, "# Updating and deleting tasks\n")
	fmt.Fprintf(&b, "%s update 1 \"Buy groceries and cook dinner\"\n", prog)
	fmt.Fprintf(&b, "%s delete 1\n\n", prog)
	fmt.Fprintf(&b, "# Marking a task as in progress or done\n")
	fmt.Fprintf(&b, "%s mark-in-progress 1\n", prog)
	fmt.Fprintf(&b, "%s mark-done 1\n\n", prog)
	fmt.Fprintf(&b, "# Listing all tasks\n")
	fmt.Fprintf(&b, "%s list\n\n", prog)
	fmt.Fprintf(&b, "# Listing tasks by status\n")
	fmt.Fprintf(&b, "%s list done\n", prog)
	fmt.Fprintf(&b, "%s list todo\n", prog)
	fmt.Fprintf(&b, "%s list in-progress\n", prog)
	return b.String()
}
