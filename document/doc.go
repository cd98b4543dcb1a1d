// Package document prepares source material for extraction. Extractors take
// plain text; real documents often arrive as HTML pages or live behind a URL.
// [FromHTML] converts raw HTML to Markdown, which language models read far
// more reliably than tag soup, and [Fetch] retrieves a page over HTTP and
// converts it in one step.
//
// Chunking oversized documents to fit a backend's context window is out of
// scope here; callers splitting large inputs do so before handing text to an
// extractor.
package document
