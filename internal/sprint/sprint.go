// Package sprint encodes the five-day Design Sprint: the daily agenda,
// the people in the room, the Friday interview script and the voting
// used to pick a solution.
package sprint

import "slices"

// Role is a sprint participant type.
type Role string

const (
	RoleDecider     Role = "decider"
	RoleFacilitator Role = "facilitator"
	RoleInterviewer Role = "interviewer"
	RoleExpert      Role = "expert"
	RoleTeam        Role = "team"
)

// Activity is one agenda block of a sprint day.
type Activity struct {
	Name        string `json:"name"`
	Minutes     int    `json:"minutes"`
	Description string `json:"description"`
	Lead        Role   `json:"lead"`
}

// Day is one day of the sprint. Number runs 1 (Monday) to 5 (Friday).
type Day struct {
	Number       int        `json:"number"`
	Name         string     `json:"name"`
	Theme        string     `json:"theme"`
	Goal         string     `json:"goal"`
	Activities   []Activity `json:"activities"`
	Deliverables []string   `json:"deliverables"`
}

// RoleInfo describes who fills a Role and what they own.
type RoleInfo struct {
	Role             Role     `json:"role"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

// InterviewAct is one act of the five-act customer interview.
type InterviewAct struct {
	Number  int      `json:"number"`
	Name    string   `json:"name"`
	Minutes int      `json:"minutes"`
	Purpose string   `json:"purpose"`
	Prompts []string `json:"prompts"`
}

func (d Day) clone() Day {
	d.Activities = slices.Clone(d.Activities)
	d.Deliverables = slices.Clone(d.Deliverables)
	return d
}

func (r RoleInfo) clone() RoleInfo {
	r.Responsibilities = slices.Clone(r.Responsibilities)
	return r
}

func (a InterviewAct) clone() InterviewAct {
	a.Prompts = slices.Clone(a.Prompts)
	return a
}

var days = []Day{
	{
		Number: 1,
		Name:   "Monday",
		Theme:  "Map",
		Goal:   "Agree on a long-term goal and pick an ambitious but manageable target for the week.",
		Activities: []Activity{
			{Name: "Set a long-term goal", Minutes: 30, Lead: RoleFacilitator,
				Description: "Ask why the project exists and where the team wants to be in two years."},
			{Name: "List sprint questions", Minutes: 30, Lead: RoleFacilitator,
				Description: "Turn assumptions and risks into questions the sprint should answer."},
			{Name: "Make a map", Minutes: 60, Lead: RoleTeam,
				Description: "Sketch customers on the left, the goal on the right and the key steps between."},
			{Name: "Ask the experts", Minutes: 90, Lead: RoleExpert,
				Description: "Interview in-house experts on strategy, customers and technology while the team listens."},
			{Name: "How Might We notes", Minutes: 30, Lead: RoleTeam,
				Description: "Capture problems heard from experts as 'How might we' opportunities, one per sticky note."},
			{Name: "Organize and vote on HMWs", Minutes: 30, Lead: RoleTeam,
				Description: "Group the notes by theme and dot-vote the most useful ones onto the map."},
			{Name: "Pick a target", Minutes: 15, Lead: RoleDecider,
				Description: "Choose one customer and one target moment on the map to focus the sprint."},
		},
		Deliverables: []string{"Long-term goal", "Sprint questions", "Map", "Prioritized HMW notes", "Target"},
	},
	{
		Number: 2,
		Name:   "Tuesday",
		Theme:  "Sketch",
		Goal:   "Look for existing ideas to remix, then have each person sketch a detailed solution.",
		Activities: []Activity{
			{Name: "Lightning demos", Minutes: 180, Lead: RoleTeam,
				Description: "Each person gives three-minute tours of products and solutions worth borrowing from."},
			{Name: "Divide or swarm", Minutes: 15, Lead: RoleFacilitator,
				Description: "Decide whether everyone sketches the whole map or splits the steps."},
			{Name: "Notes", Minutes: 20, Lead: RoleTeam,
				Description: "Walk the room and copy down the goal, questions, map and best demos."},
			{Name: "Ideas", Minutes: 20, Lead: RoleTeam,
				Description: "Jot rough ideas, doodles and headlines privately."},
			{Name: "Crazy 8s", Minutes: 8, Lead: RoleTeam,
				Description: "Fold paper into eight frames and sketch eight variations in eight minutes."},
			{Name: "Solution sketch", Minutes: 90, Lead: RoleTeam,
				Description: "Draw a self-explanatory three-panel storyboard, anonymous, with a catchy title."},
			{Name: "Recruit customers", Minutes: 30, Lead: RoleInterviewer,
				Description: "Start recruiting five target customers for Friday's interviews."},
		},
		Deliverables: []string{"Lightning demo notes", "Solution sketches", "Interview recruits in progress"},
	},
	{
		Number: 3,
		Name:   "Wednesday",
		Theme:  "Decide",
		Goal:   "Critique every solution, pick the ones with the best chance and weave them into a storyboard.",
		Activities: []Activity{
			{Name: "Art museum", Minutes: 10, Lead: RoleFacilitator,
				Description: "Tape the sketches to the wall in a row for silent review."},
			{Name: "Heat map", Minutes: 20, Lead: RoleTeam,
				Description: "Place small dots next to the parts of each sketch that stand out."},
			{Name: "Speed critique", Minutes: 90, Lead: RoleFacilitator,
				Description: "Three minutes per sketch: narrate, call out standouts, capture concerns."},
			{Name: "Straw poll", Minutes: 10, Lead: RoleTeam,
				Description: "Everyone privately picks one favorite and places a single vote."},
			{Name: "Supervote", Minutes: 10, Lead: RoleDecider,
				Description: "The Decider places three special votes; those sketches get prototyped."},
			{Name: "Rumble or all-in-one", Minutes: 30, Lead: RoleDecider,
				Description: "Decide whether to test competing prototypes or combine winners into one."},
			{Name: "Storyboard", Minutes: 240, Lead: RoleTeam,
				Description: "Draw a 10 to 15 panel storyboard starting from an opening scene a customer would see."},
		},
		Deliverables: []string{"Winning sketches", "Storyboard"},
	},
	{
		Number: 4,
		Name:   "Thursday",
		Theme:  "Prototype",
		Goal:   "Turn the storyboard into a realistic facade prototype customers can react to.",
		Activities: []Activity{
			{Name: "Pick the right tools", Minutes: 30, Lead: RoleFacilitator,
				Description: "Choose tools built for speed such as Keynote, Figma or a landing page builder."},
			{Name: "Divide and conquer", Minutes: 30, Lead: RoleFacilitator,
				Description: "Assign makers, a stitcher, a writer, an asset collector and the interviewer."},
			{Name: "Build the prototype", Minutes: 300, Lead: RoleTeam,
				Description: "Build just enough to seem real; realistic copy matters more than polish."},
			{Name: "Stitch it together", Minutes: 60, Lead: RoleTeam,
				Description: "Combine the pieces and check for consistency in names, dates and details."},
			{Name: "Trial run", Minutes: 30, Lead: RoleDecider,
				Description: "Walk through the prototype with the Decider and fix obvious mistakes."},
			{Name: "Write the interview script", Minutes: 60, Lead: RoleInterviewer,
				Description: "Adapt the five-act interview to the prototype and sprint questions."},
		},
		Deliverables: []string{"Prototype", "Interview script", "Confirmed interview schedule"},
	},
	{
		Number: 5,
		Name:   "Friday",
		Theme:  "Test",
		Goal:   "Interview five customers, watch them use the prototype and learn what works.",
		Activities: []Activity{
			{Name: "Customer interviews", Minutes: 300, Lead: RoleInterviewer,
				Description: "Five one-hour interviews, one customer at a time, following the five-act script."},
			{Name: "Watch and take notes", Minutes: 300, Lead: RoleTeam,
				Description: "The rest of the team watches a live stream and writes quotes and observations."},
			{Name: "Look for patterns", Minutes: 45, Lead: RoleFacilitator,
				Description: "Group positive, negative and neutral notes per customer and mark patterns seen three or more times."},
			{Name: "Answer sprint questions", Minutes: 30, Lead: RoleDecider,
				Description: "Review Monday's questions against the findings and decide what happens next."},
		},
		Deliverables: []string{"Interview notes", "Patterns", "Answers to sprint questions", "Next steps"},
	},
}

var roles = []RoleInfo{
	{Role: RoleDecider, Title: "Decider",
		Description:      "Makes the final calls for the team, usually the CEO or product owner.",
		Responsibilities: []string{"Picks the target on Monday", "Casts the supervotes on Wednesday", "Approves the prototype during Thursday's trial run"}},
	{Role: RoleFacilitator, Title: "Facilitator",
		Description:      "Manages time, conversations and the overall process without taking sides.",
		Responsibilities: []string{"Keeps the schedule", "Runs the whiteboard", "Summarizes discussions and pushes for decisions"}},
	{Role: RoleInterviewer, Title: "Interviewer",
		Description:      "Runs Friday's customer interviews and owns recruiting.",
		Responsibilities: []string{"Recruits five target customers", "Writes the interview script", "Conducts the interviews"}},
	{Role: RoleExpert, Title: "Expert",
		Description:      "Brings knowledge of customers, technology, finance or marketing; may join only for Monday.",
		Responsibilities: []string{"Shares expertise during Ask the Experts", "Answers questions during sketching"}},
	{Role: RoleTeam, Title: "Team member",
		Description:      "Designer, engineer, marketer or anyone else whose work the sprint depends on.",
		Responsibilities: []string{"Sketches solutions", "Votes", "Builds the prototype", "Takes notes on Friday"}},
}

var interviewActs = []InterviewAct{
	{Number: 1, Name: "Friendly welcome", Minutes: 5,
		Purpose: "Put the customer at ease and explain the ground rules.",
		Prompts: []string{
			"Thanks for coming in. We're always trying to improve, so your honest feedback helps a lot.",
			"This is pretty informal. I'll ask some questions and then show you some things we're working on.",
			"If something doesn't make sense, that's on us, not you.",
		}},
	{Number: 2, Name: "Context questions", Minutes: 10,
		Purpose: "Learn about the customer's life and work before showing anything.",
		Prompts: []string{
			"What do you do for work?",
			"How do you handle this problem today?",
			"When was the last time you looked for a product like this? What happened?",
		}},
	{Number: 3, Name: "Introduce the prototypes", Minutes: 5,
		Purpose: "Set expectations that some things won't work and ask them to think aloud.",
		Prompts: []string{
			"Some of this might not work yet, and that's fine.",
			"I didn't design this, so you can't hurt my feelings.",
			"Please think aloud as you go: what you're looking for and what you expect.",
		}},
	{Number: 4, Name: "Tasks and nudges", Minutes: 30,
		Purpose: "Watch the customer use the prototype with light nudges, not instructions.",
		Prompts: []string{
			"What is this? What is it for?",
			"What do you think of that?",
			"What would you expect to happen if you clicked that?",
			"What are you looking for?",
		}},
	{Number: 5, Name: "Quick debrief", Minutes: 5,
		Purpose: "Capture the customer's overall impressions while they are fresh.",
		Prompts: []string{
			"How does this compare to what you do now?",
			"What did you like? What didn't you like?",
			"If you could wave a magic wand, what would you change?",
		}},
}
