// Package client assembles chat requests for a report-producing deployment
// and sends them through a middleware chain to an [ai.Provider].
//
// [New] takes the provider and functional options ([WithSystemPrompt],
// [WithModel], [WithGenerationConfig], [WithMiddleware],
// [WithReportMarkers]). [Client.SendMessage] builds the user message, appends
// the output-format instructions when report markers are enabled, and
// returns the raw provider response. Extraction of the report happens
// downstream, in the report processor.
package client
