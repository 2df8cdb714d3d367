// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (<user config dir>/errands/errands.toml)
// 3. Project config file (errands.toml or .errands.toml in the working directory)
// 4. Environment variables (ERRANDS_*, NO_COLOR)
// 5. CLI flags, applied through WithOverride
//
// Each level overrides the previous one, so CLI flags take precedence.
package config
