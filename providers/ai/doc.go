// Package ai defines the provider-agnostic request and response types used to
// talk to a hosted LLM deployment, and the [Provider] interface every
// deployment client implements.
//
// Requests flow through [ChatRequest] and come back as [ChatResponse]. Files
// travel as [Attachment] values; providers without native file support embed
// them into the user message with [FormatAttachments].
package ai
