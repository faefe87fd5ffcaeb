// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Extractor: Converts raw uploaded bytes into plain text
//   - ExtractorRegistry: Selects the extractor for a file extension
//   - KnowledgeStore: Tenant-partitioned document and item persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Generator: External text-generation service. Without it, queries
//     still return ranked knowledge; only answer generation is disabled.
//   - PromptStore: User-editable prompt templates. Without it, built-in
//     prompt text is used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
