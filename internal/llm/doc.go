// Package llm defines the generation capability the orchestrator consumes
// and provides two implementations: a client backed by the official OpenAI
// SDK and a deterministic mock for tests.
//
// Design decision: The orchestrator never constructs or owns a model client
// directly; it receives a Generator by injection. This keeps the pipeline
// testable with deterministic fakes and decoupled from any specific
// provider. Latency, timeouts, and retry policy all belong to the Generator
// implementation, not to its callers.
package llm
