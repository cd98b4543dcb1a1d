package resume

import (
	"context"
	"fmt"

	"github.com/docsift/docsift/core/extractor"
	"github.com/docsift/docsift/core/recovery"
	"github.com/docsift/docsift/core/schema"
	"github.com/docsift/docsift/internal/utils"
	"github.com/docsift/docsift/providers/llm"
)

// Output budgets for the narrow operations. Contact info is a handful of
// fields; skills and match analyses run longer.
const (
	contactMaxTokens = 500
	skillsMaxTokens  = 1000
	matchMaxTokens   = 1500
	summaryMaxTokens = 300
)

// resumeSchema is the fixed shape description for full resume extraction.
// It is immutable: built once and only ever rendered into prompts.
var resumeSchema = schema.Object(
	schema.F("personal_info", schema.Object(
		schema.F("name", schema.String()),
		schema.F("email", schema.String()),
		schema.F("phone", schema.String()),
		schema.F("location", schema.StringHint("city, state/country")),
		schema.F("linkedin", schema.StringHint("URL")),
		schema.F("github", schema.StringHint("URL")),
		schema.F("website", schema.StringHint("URL")),
	)),
	schema.F("summary", schema.StringHint("professional summary/objective")),
	schema.F("work_experience", schema.Array(schema.Object(
		schema.F("company", schema.String()),
		schema.F("position", schema.String()),
		schema.F("location", schema.String()),
		schema.F("start_date", schema.StringHint("MM/YYYY")),
		schema.F("end_date", schema.StringHint("MM/YYYY or 'Present'")),
		schema.F("description", schema.String()),
		schema.F("achievements", schema.Array(schema.String())),
	))),
	schema.F("education", schema.Array(schema.Object(
		schema.F("institution", schema.String()),
		schema.F("degree", schema.String()),
		schema.F("field_of_study", schema.String()),
		schema.F("location", schema.String()),
		schema.F("graduation_date", schema.StringHint("MM/YYYY")),
		schema.F("gpa", schema.StringHint("optional")),
		schema.F("honors", schema.Array(schema.String())),
	))),
	schema.F("skills", schema.Object(
		schema.F("technical", schema.Array(schema.String())),
		schema.F("languages", schema.Array(schema.String())),
		schema.F("tools", schema.Array(schema.String())),
		schema.F("soft_skills", schema.Array(schema.String())),
	)),
	schema.F("certifications", schema.Array(schema.Object(
		schema.F("name", schema.String()),
		schema.F("issuing_organization", schema.String()),
		schema.F("date", schema.StringHint("MM/YYYY")),
		schema.F("credential_id", schema.StringHint("optional")),
	))),
	schema.F("projects", schema.Array(schema.Object(
		schema.F("name", schema.String()),
		schema.F("description", schema.String()),
		schema.F("technologies", schema.Array(schema.String())),
		schema.F("url", schema.StringHint("optional")),
	))),
	schema.F("awards", schema.Array(schema.String())),
	schema.F("publications", schema.Array(schema.String())),
	schema.F("languages", schema.Array(schema.Object(
		schema.F("language", schema.String()),
		schema.F("proficiency", schema.String()),
	))),
)

// ContactInfo is the result shape of the narrow contact-only extraction.
// Missing fields are empty strings.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// Skills categorises the skills found in a resume. All four slices are
// non-nil even when empty, so the zero shape is always usable.
type Skills struct {
	Technical  []string `json:"technical"`
	Languages  []string `json:"languages"`
	Tools      []string `json:"tools"`
	SoftSkills []string `json:"soft_skills"`
}

// emptySkills is the documented fallback shape for a failed skills recovery.
func emptySkills() Skills {
	return Skills{
		Technical:  []string{},
		Languages:  []string{},
		Tools:      []string{},
		SoftSkills: []string{},
	}
}

// Extractor extracts structured data from resume and CV text.
type Extractor struct {
	base *extractor.Extractor
}

// New returns a resume [Extractor] bound to the given provider. Options are
// forwarded to the underlying core extractor.
func New(provider llm.Provider, opts ...extractor.Option) (*Extractor, error) {
	base, err := extractor.New(provider, opts...)
	if err != nil {
		return nil, err
	}
	return &Extractor{base: base}, nil
}

// Extract extracts the full resume shape from resumeText. On recovery failure
// the returned record is the parse-failure sentinel; the error return is
// reserved for backend failures.
func (x *Extractor) Extract(ctx context.Context, resumeText string) (recovery.Record, error) {
	return x.base.ExtractStructured(ctx, resumeText, resumeSchema)
}

// ContactInfo extracts only contact information, via a narrow prompt. When
// the response cannot be recovered the zero-valued shape is returned rather
// than an error.
func (x *Extractor) ContactInfo(ctx context.Context, resumeText string) (ContactInfo, error) {
	prompt := fmt.Sprintf(`Extract contact information from this resume.

Resume:
%s

Return ONLY a JSON object with these fields (use null for missing fields):
{
  "name": "Full Name",
  "email": "email@example.com",
  "phone": "+1-234-567-8900",
  "location": "City, State",
  "linkedin": "https://linkedin.com/in/username",
  "github": "https://github.com/username",
  "website": "https://example.com"
}`, resumeText)

	content, err := x.base.Complete(ctx, prompt, contactMaxTokens)
	if err != nil {
		return ContactInfo{}, err
	}

	info, parseErr := recovery.ParseAs[ContactInfo](content)
	if parseErr != nil {
		return ContactInfo{}, nil
	}
	return info, nil
}

// Skills extracts only skills, categorised by type, via a narrow prompt.
// When the response cannot be recovered the four-empty-categories shape is
// returned rather than an error.
func (x *Extractor) Skills(ctx context.Context, resumeText string) (Skills, error) {
	prompt := fmt.Sprintf(`Extract all skills from this resume, categorized by type.

Resume:
%s

Return ONLY a JSON object:
{
  "technical": ["Python", "Java", "etc"],
  "languages": ["English", "Spanish", "etc"],
  "tools": ["Git", "Docker", "etc"],
  "soft_skills": ["Leadership", "Communication", "etc"]
}`, resumeText)

	content, err := x.base.Complete(ctx, prompt, skillsMaxTokens)
	if err != nil {
		return emptySkills(), err
	}

	skills, parseErr := recovery.ParseAs[Skills](content)
	if parseErr != nil {
		return emptySkills(), nil
	}

	// Normalise nil categories so callers can range without nil checks.
	if skills.Technical == nil {
		skills.Technical = []string{}
	}
	if skills.Languages == nil {
		skills.Languages = []string{}
	}
	if skills.Tools == nil {
		skills.Tools = []string{}
	}
	if skills.SoftSkills == nil {
		skills.SoftSkills = []string{}
	}
	return skills, nil
}

// MatchJobDescription analyses how well a resume matches a job description.
// The result record carries match_score (0-100), matching_skills,
// missing_skills, relevant_experience, strengths, gaps, recommendations, and
// summary fields. It is purely descriptive; no validation rules apply. On
// recovery failure the parse-failure sentinel is returned.
func (x *Extractor) MatchJobDescription(ctx context.Context, resumeText string, jobDescription string) (recovery.Record, error) {
	prompt := fmt.Sprintf(`Analyze how well this resume matches the job description.

Resume:
%s

Job Description:
%s

Return a JSON object with:
{
  "match_score": 0-100,
  "matching_skills": ["skill1", "skill2"],
  "missing_skills": ["skill3", "skill4"],
  "relevant_experience": ["experience1", "experience2"],
  "strengths": ["strength1", "strength2"],
  "gaps": ["gap1", "gap2"],
  "recommendations": ["recommendation1", "recommendation2"],
  "summary": "Brief analysis of the match"
}`, resumeText, jobDescription)

	content, err := x.base.Complete(ctx, prompt, matchMaxTokens)
	if err != nil {
		return nil, err
	}

	record, parseErr := recovery.ParseAs[recovery.Record](content)
	if parseErr != nil {
		return recovery.Failure(content), nil
	}
	return record, nil
}

// GenerateSummary writes a short professional summary from an already
// extracted resume record. The result is prose, returned as-is.
func (x *Extractor) GenerateSummary(ctx context.Context, resumeData recovery.Record) (string, error) {
	prompt := fmt.Sprintf(`Based on this resume data, write a compelling 2-3 sentence professional summary:

%s

Write a concise, impactful professional summary that highlights key qualifications and value proposition.`, utils.JSONToString(resumeData, true))

	return x.base.Complete(ctx, prompt, summaryMaxTokens)
}
