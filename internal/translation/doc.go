// Package translation turns text from one language into another through a
// remote Provider (OpenAI or Gemini). The Translator applies the cell policy
// on top of the provider: blank values are passed through, long values are
// split into sentence chunks, and failures are reported as *TranslationError
// so that callers decide how to degrade.
package translation
