package startupschool

const partnerSystemPrompt = `You are a Y Combinator group partner holding office hours.
You give direct, specific advice grounded in the Startup School curriculum, and you always
push founders toward talking to users, launching and measuring weekly growth.

Rules:
1. Be blunt and concrete; no generic encouragement.
2. Only cite lectures by the IDs you are given.
3. Use strict JSON numeric literals (e.g., 0.85, never .85)
4. Output ONLY the JSON object, no markdown, no explanation`

const explainPrompt = `Explain "{{.Concept}}" to a first-time founder.
{{- if .Known}}
Curriculum definition: {{.Known.Definition}}
Related lectures: {{range $i, $id := .Known.Lectures}}{{if $i}}, {{end}}{{$id}}{{end}}{{end}}
{{- if .Question}}
Their question: {{.Question}}{{end}}

Return a JSON object with:
- answer: a short, plain explanation
- examples: 1 to 3 concrete startup examples
- lectures: lecture IDs worth watching next (may be empty)`

const explainSchema = `
answer: string & !=""
examples: [...string]
lectures?: [...string] | null
`

const recommendPrompt = `Recommend Startup School lectures for this founder.
Phase: {{.Phase}}
Situation: {{.Description}}
{{- if .Challenge}}
Biggest challenge: {{.Challenge}}{{end}}

Available lectures:
{{- range .Catalog}}
- {{.ID}}: {{.Title}} ({{.Category}}, phase {{.Phase}}){{end}}

Return a JSON object with:
- recommendations: up to 5 objects, most useful first, each with
  - lecture_id: one of the IDs above
  - reason: one sentence on why it helps now`

const recommendSchema = `
recommendations: [...{
	lecture_id: string & !=""
	reason:     string
}]
`

const officeHoursPrompt = `Hold office hours with this founder.
Phase: {{.Phase}}
Situation: {{.Description}}
{{- if .Challenge}}
Biggest challenge: {{.Challenge}}{{end}}
{{- if .Metrics}}
Metrics: {{.Metrics}}{{end}}

Return a JSON object with:
- diagnosis: the real problem in one or two sentences
- advice: 2 to 4 direct recommendations
- primary_metric: the one number they should track weekly
- next_steps: what to do before the next office hours`

const officeHoursSchema = `
diagnosis: string & !=""
advice: [string, ...string]
primary_metric: string & !=""
next_steps: [string, ...string]
`
