// Package resume extracts structured data from resumes and CVs.
//
// [Extractor.Extract] runs the full fixed resume schema through the
// core/extractor pipeline. The narrow operations, [Extractor.ContactInfo]
// and [Extractor.Skills], issue hand-authored prompts that bypass the schema
// rendering but share the same recovery path, falling back to their
// documented empty shapes instead of failing. [Extractor.MatchJobDescription]
// scores a resume against a job description and returns a purely descriptive
// record; no validation rules apply to it.
package resume
