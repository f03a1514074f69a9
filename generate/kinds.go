package generate

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Kind identifies a content type the assistant can draft.
type Kind string

const (
	KindAnnouncement Kind = "announcement"
	KindSocial       Kind = "social"
	KindDeveloper    Kind = "developer"
	KindFAQ          Kind = "faq"
	KindCompetitive  Kind = "competitive"
)

// Input describes one form field of a content kind.
type Input struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Multiline   bool   `json:"multiline"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
}

// Spec describes a content kind: its form and its prompt.
type Spec struct {
	Kind        Kind    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Inputs      []Input `json:"inputs"`

	prompt *template.Template
}

var catalog = []*Spec{
	{
		Kind:        KindAnnouncement,
		Title:       "Generate Launch Announcement",
		Description: "Create a compelling announcement for your feature launch",
		Inputs: []Input{
			{Key: "featureName", Label: "Feature Name", Placeholder: "Edge Functions 2.0", Required: true},
			{Key: "keyBenefit", Label: "Key Benefit", Placeholder: "50% faster execution time", Required: true},
			{Key: "techDetails", Label: "Technical Details", Multiline: true, Placeholder: "Built on V8 isolates with global distribution..."},
		},
		prompt: mustPrompt("announcement", `Create a launch announcement for a feature called "{{.featureName}}" with key benefit: "{{.keyBenefit}}" and technical details: "{{.techDetails}}".

Format as a professional product announcement with:
- Compelling headline
- Brief overview
- Key benefits (2-3 bullet points)
- Technical highlights
- Call to action

Keep it concise and exciting, around 200-300 words.`),
	},
	{
		Kind:        KindSocial,
		Title:       "Create Social Media Variants",
		Description: "Generate platform-specific social media content",
		Inputs: []Input{
			{Key: "title", Label: "Launch Title", Placeholder: "Supabase Edge Functions 2.0", Required: true},
			{Key: "description", Label: "Description", Multiline: true, Placeholder: "Next-generation serverless functions...", Required: true},
		},
		prompt: mustPrompt("social", `Create social media content variants for a launch titled "{{.title}}" with description: "{{.description}}".

Generate:
1. **Twitter/X Post** (under 280 chars, include relevant hashtags)
2. **LinkedIn Post** (professional tone, 2-3 paragraphs)
3. **Dev.to Snippet** (developer-focused, technical angle)

Make each variant engaging and appropriate for its platform.`),
	},
	{
		Kind:        KindDeveloper,
		Title:       "Write Developer Angle",
		Description: "Create technical messaging focused on developers",
		Inputs: []Input{
			{Key: "description", Label: "Feature Description", Multiline: true, Placeholder: "Describe the technical feature or capability...", Required: true},
		},
		prompt: mustPrompt("developer", `Transform this feature description into developer-focused messaging: "{{.description}}"

Create compelling copy that emphasizes:
- Technical benefits and capabilities
- Developer experience improvements
- Integration possibilities
- Performance or efficiency gains

Target audience: Software engineers and technical decision makers.`),
	},
	{
		Kind:        KindFAQ,
		Title:       "Generate FAQ",
		Description: "Create comprehensive frequently asked questions",
		Inputs: []Input{
			{Key: "featureInfo", Label: "Feature Information", Multiline: true, Placeholder: "Provide detailed information about the feature...", Required: true},
		},
		prompt: mustPrompt("faq", `Generate a comprehensive FAQ section for this feature: "{{.featureInfo}}"

Create 5-7 frequently asked questions covering:
- What it is and how it works
- Key benefits and use cases
- Technical requirements or limitations
- Pricing or availability
- Implementation guidance

Format as Q&A pairs with clear, helpful answers.`),
	},
	{
		Kind:        KindCompetitive,
		Title:       "Competitive Analysis",
		Description: "Analyze positioning against competitors",
		Inputs: []Input{
			{Key: "competitor", Label: "Competitor", Placeholder: "Vercel, Netlify, AWS Lambda", Required: true},
			{Key: "feature", Label: "Our Feature", Multiline: true, Placeholder: "Describe your feature and its capabilities...", Required: true},
		},
		prompt: mustPrompt("competitive", `Analyze positioning against competitor "{{.competitor}}" for our feature: "{{.feature}}"

Provide:
- Key differentiators (3-4 points)
- Competitive advantages
- Positioning recommendations
- Messaging suggestions

Focus on unique value propositions and market positioning.`),
	},
}

func mustPrompt(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=zero").Parse(text))
}

// Kinds returns the content kinds in display order.
func Kinds() []*Spec {
	return append([]*Spec(nil), catalog...)
}

// Lookup returns the spec of a kind.
func Lookup(kind Kind) (*Spec, bool) {
	for _, s := range catalog {
		if s.Kind == kind {
			return s, true
		}
	}
	return nil, false
}

// ParseKind maps a kind id to a Kind, ignoring case.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := Lookup(Kind(s)); ok {
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown content type %q", s)
}

// Missing returns the labels of required inputs that are blank, in
// declaration order.
func (s *Spec) Missing(inputs map[string]string) []string {
	var missing []string
	for _, in := range s.Inputs {
		if in.Required && strings.TrimSpace(inputs[in.Key]) == "" {
			missing = append(missing, in.Label)
		}
	}
	return missing
}

// Render fills the prompt template. Unknown keys are ignored and absent
// optional keys render as empty strings.
func (s *Spec) Render(inputs map[string]string) (string, error) {
	data := make(map[string]string, len(s.Inputs))
	for _, in := range s.Inputs {
		data[in.Key] = inputs[in.Key]
	}
	var buf bytes.Buffer
	if err := s.prompt.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", s.Kind, err)
	}
	return buf.String(), nil
}
