// Package partition splits the remaining command-line arguments (after
// --ottofile/-o has been removed by the loader) into one root partition
// followed by one partition per requested task invocation, mirroring the
// Rust original's cli/parse.rs::{indices, partitions}.
package partition

// indices returns the positions in args at which a known task name
// occurs, always starting with 0 so the first partition captures
// everything before the first task name (spec.md §4.3).
func indices(args []string, taskNames map[string]bool) []int {
	idx := []int{0}
	for i, arg := range args {
		if taskNames[arg] {
			idx = append(idx, i)
		}
	}
	return idx
}

// Split partitions args into [root, task1-args, task2-args, ...]. A task
// name occurring more than once in args yields one partition per
// occurrence. The plan still runs each task name once: cmd.run binds every
// partition, and a later partition for the same task replaces the earlier
// one's values.
func Split(args []string, taskNames []string) [][]string {
	names := make(map[string]bool, len(taskNames))
	for _, n := range taskNames {
		names[n] = true
	}

	idx := indices(args, names)
	partitions := make([][]string, 0, len(idx))
	end := len(args)
	for i := len(idx) - 1; i >= 0; i-- {
		start := idx[i]
		part := append([]string{}, args[start:end]...)
		partitions = append([][]string{part}, partitions...)
		end = start
	}
	return partitions
}
