package storybrand

const guideSystemPrompt = `You are a StoryBrand certified guide. You clarify business messages with the SB7 framework:
the customer is the hero, the brand is the guide, and every message answers what the hero wants,
what problem stands in the way and what life looks like after.

Rules:
1. Never make the company the hero.
2. Use plain words a twelve-year-old would understand.
3. Keep each field to one or two short sentences.
4. Output ONLY the JSON object, no markdown, no explanation`

const brandScriptPrompt = `Write a StoryBrand BrandScript for {{.Name}}.
Product: {{.Product}}
Customer: {{.Customer}}
{{- if .Problem}}
Problem they solve: {{.Problem}}{{end}}
{{- if .Differentiator}}
What makes them different: {{.Differentiator}}{{end}}

Return a JSON object with:
- character: what the customer wants, in a few words
- problem: {villain, external, internal, philosophical}
- guide: {empathy, authority}
- plan: 3 or 4 short steps
- call_to_action: {direct, transitional}
- failure: 2 to 4 stakes the customer avoids
- success: 2 to 4 outcomes the customer gains`

const brandScriptSchema = `
character: string & !=""
problem: {
	villain?: string | null
	external: string & !=""
	internal: string & !=""
	philosophical?: string | null
}
guide: {
	empathy:   string & !=""
	authority: string & !=""
}
plan: [string, ...string]
call_to_action: {
	direct: string & !=""
	transitional?: string | null
}
failure: [string, ...string]
success: [string, ...string]
`

const oneLinerPrompt = `Write a StoryBrand one-liner for {{.Name}}.
Product: {{.Product}}
Customer: {{.Customer}}
{{- if .Problem}}
Problem they solve: {{.Problem}}{{end}}

A one-liner has three parts: the problem the customer faces, the product as the solution,
and the result the customer gets. Return a JSON object with:
- problem: one sentence naming the customer's problem
- solution: one sentence positioning the product as the answer
- result: one sentence describing the customer's success`

const oneLinerSchema = `
problem:  string & !=""
solution: string & !=""
result:   string & !=""
`

const wireframePrompt = `Turn this BrandScript into a one-page website wireframe.
Use the standard StoryBrand sections in this order: header, stakes, value proposition, guide,
plan, explanatory paragraph, video or image, price choices, junk drawer.

Return a JSON object with:
- sections: objects with {name, headline, content, cta} where cta may be empty`

const wireframeSchema = `
sections: [...{
	name:     string & !=""
	headline: string
	content:  string
	cta?:     string | null
}] & [_, _, _, ...]
`
