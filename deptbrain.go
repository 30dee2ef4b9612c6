// Package deptbrain answers natural-language questions about a university
// department (faculty, subjects, cabins, availability). Each question runs
// through abuse and topic guardrails, then a deterministic structured lookup
// over the faculty catalog, and finally a retrieval-augmented generation
// fallback over a vector store.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, fuzzy/).
package deptbrain
