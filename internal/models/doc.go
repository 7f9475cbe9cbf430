// Package models lists the OpenAI models that can serve as translation
// backends for the current API key.
package models
