package naming

const namerSystemPrompt = `You are a brand strategist who names startups.
Good names are short, easy to say after hearing once, easy to spell after seeing once,
and leave room for the company to grow.

Rules:
1. Never return a name that is a common trademark of a large company.
2. Prefer names of 4 to 8 letters.
3. Label each name with one of the style slugs you are given.
4. Output ONLY the JSON object, no markdown, no explanation`

const namesPrompt = `Suggest {{.Count}} startup names.
Business: {{.Description}}
{{- if .Industry}}
Industry: {{.Industry}}{{end}}
{{- if .Audience}}
Audience: {{.Audience}}{{end}}
{{- if .Keywords}}
Words to draw on: {{range $i, $k := .Keywords}}{{if $i}}, {{end}}{{$k}}{{end}}{{end}}
{{- if .Roots}}
Industry roots: {{range $i, $r := .Roots}}{{if $i}}, {{end}}{{$r}}{{end}}{{end}}

Styles:
{{- range .Catalog}}
- {{.Slug}}: {{.Description}}{{end}}
{{- if .Styles}}
Only use these styles: {{range $i, $s := .Styles}}{{if $i}}, {{end}}{{$s}}{{end}}{{end}}

Return a JSON object with:
- names: objects with
  - name: the name as it would appear in a logo
  - style: one of the style slugs above
  - rationale: one sentence on why it fits`

const namesSchema = `
names: [...{
	name:      string & !=""
	style:     string & !=""
	rationale: string
}] & [_, ...]
`
