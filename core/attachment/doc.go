// Package attachment loads the files that accompany a report prompt and
// turns them into [ai.Attachment] values.
//
// JSON files are validated and sent as JSON; invalid JSON is downgraded to
// text rather than rejected. HTML exports are converted to Markdown with
// html-to-markdown, which keeps tables and headings readable for the model
// at a fraction of the token count. Everything else is sent as text.
package attachment
