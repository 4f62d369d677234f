package leancanvas

const advisorSystemPrompt = `You are a lean startup advisor who coaches founders through Ash Maurya's Lean Canvas.
You favor specific, testable statements over buzzwords, and you treat every box of the canvas
as a hypothesis to be validated with customers.

Rules:
1. Write short bullet-style entries, not paragraphs.
2. Name real customer segments and channels, not "everyone" or "social media".
3. Output ONLY the JSON object, no markdown, no explanation`

const canvasPrompt = `Draft a Lean Canvas for this idea.
Name: {{.Name}}
Idea: {{.Description}}
{{- if .Customer}}
Intended customer: {{.Customer}}{{end}}

Return a JSON object with:
- problem: top 1 to 3 problems
- existing_alternatives: how these problems are solved today
- customer_segments: target customers
- early_adopters: the characteristics of the first customers
- unique_value_proposition: one sentence
- high_level_concept: an "X for Y" analogy
- solution: one solution per problem
- channels: paths to customers
- revenue_streams: how the business makes money
- cost_structure: main costs
- key_metrics: the numbers that matter
- unfair_advantage: something hard to copy or buy (may be "none yet")`

const canvasSchema = `
problem: [string, ...string]
existing_alternatives?: [...string] | null
customer_segments: [string, ...string]
early_adopters?: [...string] | null
unique_value_proposition: string & !=""
high_level_concept?: string | null
solution: [string, ...string]
channels: [string, ...string]
revenue_streams: [string, ...string]
cost_structure: [string, ...string]
key_metrics: [string, ...string]
unfair_advantage: string
`

const pivotPrompt = `The founders below are considering a pivot.
{{- if .Learnings}}
What they learned: {{.Learnings}}{{end}}

Choose from these pivot types only:
{{- range .Types}}
- {{.Slug}}: {{.Description}}{{end}}

Return a JSON object with:
- options: 2 or 3 objects, each with
  - type: one of the slugs above
  - rationale: why this pivot fits what they learned
  - experiment: the cheapest test that would validate it`

const pivotSchema = `
options: [...{
	type:       string & !=""
	rationale:  string & !=""
	experiment: string & !=""
}] & [_, ...]
`

const assumptionsPrompt = `Identify the riskiest assumptions in this Lean Canvas.
Consider these blocks:
{{- range .Blocks}}
- {{.Key}} ({{.Risk}} risk){{end}}

Return a JSON object with:
- assumptions: 3 to 5 objects ordered from riskiest, each with
  - block: the block key the assumption comes from
  - assumption: the belief that must be true
  - risk: "high", "medium" or "low"
  - test: a quick experiment to validate it`

const assumptionsSchema = `
assumptions: [...{
	block:      string & !=""
	assumption: string & !=""
	risk:       "high" | "medium" | "low"
	test:       string & !=""
}] & [_, ...]
`
