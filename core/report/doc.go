// Package report turns a raw model reply into persisted artifacts.
//
// [Processor.Process] always stores the raw reply first, then runs the
// extractor. A parsed report is stored as indented JSON and summarised; a
// failed extraction is stored as text for manual inspection, optionally
// next to a jsonrepair salvage attempt. Sink failures are recorded on the
// [Outcome] rather than aborting the run, so one broken destination never
// costs the others their copy.
package report
