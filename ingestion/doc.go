// Package ingestion provides pipeline orchestration for loading job postings.
//
// The Pipeline type manages the ingestion workflow for postings, including:
//   - Assigning stable content-hash IDs
//   - Embedding posting documents and storing them asynchronously
//   - Mirroring Company/Job/Skill structure into the graph asynchronously
//
// Processing is performed concurrently using worker pools to maximize throughput.
// Errors during async processing are logged but do not fail the ingestion operation;
// Wait blocks until submitted work has drained.
package ingestion
