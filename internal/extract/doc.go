// Package extract obtains plain text from candidate files for content-phase
// classification.
//
// Extraction is best-effort by contract: any failure, unsupported type, or
// unreadable document yields an empty string, never an error, so one corrupt
// download can never stall the pipeline. Only extensions on the configured
// content-scan allow-list are opened at all; everything else returns empty
// immediately. Text files are decoded BOM-aware with undecodable bytes
// replaced, PDFs are read page by page, and Word containers have their
// paragraph text pulled out of word/document.xml.
package extract
