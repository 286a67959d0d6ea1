package checklist

// FilterIncomplete returns the sections holding only tasks that are not done.
// Sections left with no tasks are dropped entirely, headers included. Input
// sections are never mutated; section and task order is preserved.
func FilterIncomplete(sections []Section) []Section {
	var out []Section
	for _, s := range sections {
		var kept []Task
		for _, t := range s.Tasks {
			if !t.Done() {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, Section{Headers: s.Headers, Tasks: kept})
	}
	return out
}

// CountTasks returns the total number of tasks across sections.
func CountTasks(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Tasks)
	}
	return n
}
