package catalog

// Question is one quiz question: a stable id and exactly four answer
// options. Option position carries no archetype meaning; the semantic
// lookup table maps option text instead.
type Question struct {
	ID      int       `json:"id"`
	Options [4]string `json:"options"`
}

var questions = []Question{
	{ID: 1, Options: [4]string{"patient", "logical", "enthusiastic", "bold"}},
	{ID: 2, Options: [4]string{"supportive", "thorough", "optimistic", "decisive"}},
	{ID: 3, Options: [4]string{"peaceful", "analytical", "talkative", "direct"}},
	{ID: 4, Options: [4]string{"friendly", "serious", "charismatic", "dominant"}},
	{ID: 5, Options: [4]string{"compassionate", "meticulous", "social", "driven"}},
	{ID: 6, Options: [4]string{"willing", "practical", "creative", "persistent"}},
	{ID: 7, Options: [4]string{"loyal", "conventional", "influential", "independent"}},
	{ID: 8, Options: [4]string{"compromising", "accurate", "impulsive", "assertive"}},
	{ID: 9, Options: [4]string{"dependable", "procedural", "passionate", "competitive"}},
	{ID: 10, Options: [4]string{"charitable", "curious", "motivator", "powerful"}},
	{ID: 11, Options: [4]string{"respectful", "withdrawn", "excitable", "tough"}},
	{ID: 12, Options: [4]string{"selfless", "seeking", "adventurous", "goal oriented"}},
	{ID: 13, Options: [4]string{"sincere", "unemotional", "cheerful", "harsh"}},
	{ID: 14, Options: [4]string{"risk averse", "minimize risk", "rash", "risk taker"}},
	{ID: 15, Options: [4]string{"idealistic", "perfectionist", "interested", "demanding"}},
	{ID: 16, Options: [4]string{"consistent", "predictable", "undisciplined", "restless"}},
	{ID: 17, Options: [4]string{"shy", "reclusive", "social", "bossy"}},
	{ID: 18, Options: [4]string{"fearful", "elaborate", "reacting", "forward"}},
	{ID: 19, Options: [4]string{"pleasant", "achieving", "braggart", "severe"}},
	{ID: 20, Options: [4]string{"people focused", "analytical", "showy", "strong willed"}},
}

// selectableTraits is the list offered by the free trait-picker input mode.
var selectableTraits = []string{
	"Persistent",
	"Adventurous",
	"Thorough",
	"Patient",
	"Powerful",
	"Charismatic",
	"Logical",
	"Sincere",
	"Motivated",
	"Optimistic",
	"Practical",
	"Accurate",
	"Competitive",
	"Demanding",
	"Risk taker",
	"Serious",
	"Compassionate",
	"Driven",
	"Curious",
	"Passionate",
	"Talkative",
	"Assertive",
	"Independent",
	"Enthusiastic",
	"Idealistic",
	"Charitable",
	"Peaceful",
	"Strong willed",
	"Respectful",
	"Cheerful",
	"Goal oriented",
	"Procedural",
	"Selfless",
	"People focused",
	"Achieving",
	"Meticulous",
	"Seeking",
	"Conventional",
	"Social",
	"Dependable",
	"Influential",
	"Impulsive",
	"Perfectionist",
	"Forward",
	"Supportive",
	"Analytical",
}

// Questions returns a copy of the question bank in order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// SelectableTraits returns a copy of the free-selection trait list.
func SelectableTraits() []string {
	return append([]string(nil), selectableTraits...)
}
