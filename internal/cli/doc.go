// Package cli provides command-line interface setup and configuration
// for the xltranslate application. It handles flag parsing, command
// creation, and configuration management using cobra and viper, and
// turns the merged settings into a translation.Config.
package cli
