// Package utils exposes reusable helpers consumed by multiple commands.
//
// It houses the ConfigurationLoader, which layers an embedded YAML document,
// an optional user configuration file, and explicit environment bindings
// through Viper, and the LoggerFactory that builds the zap diagnostics logger.
package utils
