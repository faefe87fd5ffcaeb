// Package extractors provides implementations of the Extractor interface
// for the supported upload formats. Each extractor knows how to pull plain
// text out of one file format, keyed by extension.
//
// Extractors are registered with the ExtractorRegistry at startup.
package extractors
