package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# errands configuration file
# Values can be overridden by ERRANDS_* environment variables or CLI flags

# List files per location (supports ~ and $VAR expansion)
# local_file = "errands.yml"
# user_file = "errands/errands.yml"
# global_file = "errands/errands.yml"

# Logging: debug, info, warn, error
log_level = "warn"
# text, json or logfmt
log_format = "text"
log_timestamps = false
log_caller = false

# Colored output (NO_COLOR disables)
color = true

# Viewer refresh interval in seconds, 0 disables
refresh_seconds = 2

# ANSI or hex colors per priority
[colors]
Emergency = "15"
Urgent = "9"
High = "11"
Medium = "10"
Routine = "14"
Deferred = "13"
`
}
