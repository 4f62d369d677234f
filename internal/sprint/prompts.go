package sprint

const facilitatorSystemPrompt = `You are an experienced Design Sprint facilitator trained on the Google Ventures method.
You help teams frame their sprint so that five days of work answer the questions that matter most.

Rules:
1. Be concrete: name the customer, the product and the moment that matters.
2. Phrase sprint questions as "Can we...?" or "Will customers...?".
3. Phrase opportunities as "How might we...?".
4. Use strict JSON numeric literals (e.g., 0.85, never .85)
5. Output ONLY the JSON object, no markdown, no explanation`

const questionsPrompt = `Frame a Design Sprint for {{.Company}}.
Product: {{.Product}}
Challenge: {{.Challenge}}
{{- if .Customer}}
Target customer: {{.Customer}}{{end}}

Return a JSON object with:
- long_term_goal: one optimistic sentence describing where the team wants to be in two years
- questions: 3 to 6 sprint questions that could stop the team from reaching the goal`

const questionsSchema = `
long_term_goal: string & !=""
questions: [string, ...string]
`

const howMightWePrompt = `Turn the challenge below into "How might we" notes for Monday's expert interviews.
Company: {{.Company}}
Product: {{.Product}}
Challenge: {{.Challenge}}
{{- if .Customer}}
Target customer: {{.Customer}}{{end}}

Return a JSON object with:
- notes: 6 to 12 objects, each with
  - theme: a short grouping label such as "onboarding" or "trust"
  - note: the opportunity, starting with "How might we"`

const howMightWeSchema = `
notes: [...{
	theme: string & !=""
	note:  string & !=""
}] & [_, ...]
`

const interviewPrompt = `Write a five-act customer interview script for Friday's test.
Company: {{.Company}}
Product: {{.Product}}
Challenge: {{.Challenge}}
{{- if .Customer}}
Target customer: {{.Customer}}{{end}}

The acts are, in order:
{{- range .Acts}}
{{.Number}}. {{.Name}} ({{.Minutes}} min): {{.Purpose}}{{end}}

Return a JSON object with:
- acts: exactly five objects in the order above, each with
  - act: the act number
  - name: the act name
  - questions: the questions or lines the interviewer should say`

const interviewSchema = `
acts: [...{
	act:  int & >=1 & <=5
	name: string & !=""
	questions: [string, ...string]
}]
`
