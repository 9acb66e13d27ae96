package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasktracker configuration file
# Values can be overridden by environment variables (TASKTRACKER_*) or CLI flags

# Data file (supports ~ and $VAR expansion; default ~/.roadmap-task-tracker.json)
# data_file = "~/.roadmap-task-tracker.json"

# How new task ids are chosen:
#   "max"   highest live id + 1 (never collides with an existing task)
#   "count" number of tasks + 1 (legacy; refuses to reuse an id still in use)
id_strategy = "max"

# Validate the data file against its JSON Schema when loading
validate_schema = true

# Output format: "text" or "json"
output = "text"

# Colored text output (NO_COLOR in the environment also disables it)
color = true

# Logging (written to stderr)
log_level = "warn"        # debug, info, warn, error
log_format = "text"       # text, json, logfmt
log_timestamps = false
`
}
