package landingpage

const copywriterSystemPrompt = `You are a conversion copywriter and CRO consultant.
You write landing page copy that is clear before it is clever, and you ground every
recommendation in a named conversion heuristic.

Rules:
1. Headlines are six to twelve words and speak to the reader.
2. Never invent statistics, testimonials or customer names.
3. Use strict JSON numeric literals (e.g., 0.85, never .85)
4. Output ONLY the JSON object, no markdown, no explanation`

const headlinesPrompt = `Write landing page headlines for {{.Name}}.
What it is: {{.Description}}
{{- if .Audience}}
Audience: {{.Audience}}{{end}}
{{- if .Benefit}}
Main benefit: {{.Benefit}}{{end}}

Return a JSON object with:
- headlines: 5 to 10 objects, each with
  - text: the headline
  - angle: the persuasion angle, e.g. "outcome", "pain", "speed", "social proof"`

const headlinesSchema = `
headlines: [...{
	text:  string & !=""
	angle: string
}] & [_, ...]
`

const critiquePrompt = `Critique this landing page audit and propose fixes.
The page scored {{.Score}}/100. Failed heuristics:
{{- range .Failed}}
- {{.Heuristic}}: {{.Detail}}{{end}}

Use these heuristic slugs only:
{{- range .Heuristics}}
- {{.Slug}}{{end}}

Return a JSON object with:
- summary: two sentences on the biggest conversion problem
- fixes: objects ordered by priority, each with
  - heuristic: one of the slugs above
  - problem: what is wrong on this page
  - suggestion: the concrete change to make
  - priority: "high", "medium" or "low"`

const critiqueSchema = `
summary: string & !=""
fixes: [...{
	heuristic:  string & !=""
	problem:    string & !=""
	suggestion: string & !=""
	priority:   "high" | "medium" | "low"
}]
`

const experimentsPrompt = `Propose A/B test ideas for the landing page of {{.Name}}.
What it is: {{.Description}}
{{- if .Audience}}
Audience: {{.Audience}}{{end}}

Return a JSON object with:
- experiments: 3 to 8 objects, each with
  - name: a short label
  - hypothesis: "If we ..., then ... because ..."
  - impact: 1 to 10
  - confidence: 1 to 10
  - ease: 1 to 10`

const experimentsSchema = `
experiments: [...{
	name:       string & !=""
	hypothesis: string & !=""
	impact:     number & >=1 & <=10
	confidence: number & >=1 & <=10
	ease:       number & >=1 & <=10
}] & [_, ...]
`
