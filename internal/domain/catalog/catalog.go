// Package catalog holds the immutable reference tables the scoring engine
// reads: the archetype profiles, the question bank, the free-selection trait
// list and the semantic trait lookup table. All tables are populated at
// process start and never mutated; accessors return copies.
package catalog

import (
	"github.com/ethoslab/archetype/internal/domain/types"
)

// Profile describes one archetype: its scoring inputs (defining traits and
// strength phrases) plus the descriptive content rendered to users.
type Profile struct {
	ID            types.Archetype
	Name          string
	Emoji         string
	Title         string
	Description   string
	Traits        []string
	Strengths     []string
	Challenges    []string
	WorkStyle     string
	Communication string
	Relationships string
	Leadership    string
	Motivation    string
	Stress        string
	Growth        string

	// Compatibility relations are descriptive only; scoring never reads them.
	CompatibleWith []types.Archetype
	ConflictsWith  []types.Archetype

	FamousPeople   []string
	CareersToAvoid []string
	IdealCareers   []string
}

// profiles is the archetype catalog in declared order. The order is a scoring
// contract: the trait-weighted strategy breaks ties by keeping the earliest
// archetype in this slice.
var profiles = []Profile{
	{
		ID:          types.Dove,
		Name:        "Dove",
		Emoji:       "\U0001F54A️",
		Title:       "The Peaceful Supporter",
		Description: "Doves are peaceful, friendly, and loyal. They excel at supporting others and maintaining harmony while avoiding conflict and change.",
		Traits:      []string{"Peaceful", "Friendly", "Loyal", "Team-oriented", "Supportive"},
		Strengths: []string{
			"Empathetic and supportive, always putting others first",
			"Patient and dependable, providing stability to teams",
			"Collaboration-focused, excelling in team environments",
			"Harmony-building, creating peaceful work environments",
			"Excellent listener who makes others feel valued and heard",
		},
		Challenges: []string{
			"Avoids necessary conflicts and difficult conversations",
			"Resistant to change and new approaches",
			"May be too risk-averse and miss opportunities",
			"Struggles with assertiveness and self-advocacy",
		},
		WorkStyle:      "Excels in stable, collaborative environments where teamwork and relationship-building are valued. Prefers predictable routines and consensus-based decision making.",
		Communication:  "Warm, gentle, and non-confrontational. Excellent listener who avoids conflict and seeks harmony in all interactions.",
		Relationships:  "Forms deep, loyal relationships built on trust and mutual support. Highly valued for their reliability and caring nature.",
		Leadership:     "Leads through service and support. Creates inclusive environments where everyone feels valued and heard.",
		Motivation:     "Motivated by helping others, maintaining harmony, and contributing to team success in a supportive role.",
		Stress:         "Becomes stressed when faced with conflict, rapid change, or pressure to be assertive and competitive.",
		Growth:         "Should work on becoming more comfortable with necessary conflicts and developing assertiveness skills.",
		CompatibleWith: []types.Archetype{types.Owl, types.Peacock},
		ConflictsWith:  []types.Archetype{types.Shark},
		FamousPeople:   []string{"Oprah Winfrey", "Ellen DeGeneres", "Barack Obama", "Maya Angelou", "Fred Rogers"},
		CareersToAvoid: []string{
			"Debt Collector",
			"Corporate Auditor",
			"Security Guard",
			"Quality Control Inspector",
			"Parking Enforcement Officer",
		},
		IdealCareers: []string{
			"Chief People Officer",
			"Organizational Development Director",
			"Executive Coach",
			"Nonprofit Executive Director",
			"Chief Diversity Officer",
			"Patient Experience Officer",
		},
	},
	{
		ID:          types.Peacock,
		Name:        "Peacock",
		Emoji:       "\U0001F99A",
		Title:       "The Charismatic Communicator",
		Description: "Peacocks are showy, talkative, and optimistic. They excel at inspiring others and building relationships through their enthusiasm and creativity.",
		Traits:      []string{"Showy", "Talkative", "Optimistic", "Enthusiastic", "Attention-seeking"},
		Strengths: []string{
			"Creative and energetic communicator who inspires others",
			"Natural ability to see the big picture and envision possibilities",
			"Excellent at building relationships and networking",
			"Brings enthusiasm and positive energy to teams",
			"Skilled at motivating others and generating excitement for ideas",
		},
		Challenges: []string{
			"May neglect important details in favor of the big picture",
			"Can struggle with time management and meeting deadlines",
			"Might dominate conversations and seek too much attention",
			"May lose interest in projects once the initial excitement fades",
		},
		WorkStyle:      "Thrives in dynamic, people-focused environments where creativity and communication are valued. Prefers variety and social interaction.",
		Communication:  "Expressive, enthusiastic, and persuasive. Excellent at presenting ideas and inspiring others with their vision.",
		Relationships:  "Forms many relationships easily and enjoys being the center of attention. Values fun and excitement in interactions.",
		Leadership:     "Leads through inspiration and charisma. Motivates teams with their enthusiasm and ability to paint compelling visions.",
		Motivation:     "Driven by recognition, social interaction, and the opportunity to influence and inspire others.",
		Stress:         "Becomes stressed in highly detailed, routine work or when forced to work in isolation for extended periods.",
		Growth:         "Should focus on developing attention to detail, time management skills, and following through on commitments.",
		CompatibleWith: []types.Archetype{types.Dove, types.Shark},
		ConflictsWith:  []types.Archetype{types.Owl},
		FamousPeople:   []string{"Tony Robbins", "Richard Branson", "Oprah Winfrey", "Robin Williams", "Steve Jobs"},
		CareersToAvoid: []string{
			"Data Analyst",
			"Accountant",
			"Quality Control Inspector",
			"Library Researcher",
			"Technical Writer",
		},
		IdealCareers: []string{
			"Chief Marketing Officer",
			"Sales Director",
			"Public Relations Manager",
			"Creative Director",
			"Motivational Speaker",
			"Entertainment Executive",
		},
	},
	{
		ID:          types.Owl,
		Name:        "Owl",
		Emoji:       "\U0001F989",
		Title:       "The Methodical Perfectionist",
		Description: "Owls are logical, detail-oriented, and methodical. They excel at systematic analysis and maintaining high standards through structured approaches.",
		Traits:      []string{"Logical", "Detail-oriented", "Methodical", "Perfectionist", "Rule-following"},
		Strengths: []string{
			"Analytical and well-organized in their approach to problems",
			"Thorough and meticulous, ensuring high-quality outcomes",
			"Quality-focused with exceptional attention to detail",
			"Ideal for data-driven roles requiring precision",
			"Values structure and follows established procedures",
		},
		Challenges: []string{
			"May get lost in details and lose sight of the big picture",
			"Can be overly perfectionist, causing delays",
			"Slow to make decisions due to need for complete information",
			"May struggle with ambiguous or rapidly changing situations",
		},
		WorkStyle:      "Excels in structured environments with clear rules and procedures. Prefers working independently with time to analyze and perfect their work.",
		Communication:  "Precise, fact-based, and methodical. Values accuracy and detailed explanations over quick decisions.",
		Relationships:  "Forms relationships based on mutual respect for competence and reliability. Values consistency and dependability.",
		Leadership:     "Leads through expertise and systematic approaches. Ensures quality and accuracy in all team outputs.",
		Motivation:     "Driven by the pursuit of perfection, accuracy, and the opportunity to work within well-defined systems.",
		Stress:         "Becomes stressed when forced to make quick decisions without adequate analysis or when working in chaotic environments.",
		Growth:         "Should work on being more decisive with incomplete information and focusing on practical outcomes over perfection.",
		CompatibleWith: []types.Archetype{types.Dove, types.Shark},
		ConflictsWith:  []types.Archetype{types.Peacock},
		FamousPeople:   []string{"Stephen Hawking", "Marie Curie", "Neil deGrasse Tyson", "Bill Nye", "Jane Goodall"},
		CareersToAvoid: []string{
			"Sales Representative",
			"Public Relations Manager",
			"Event Planner",
			"Tour Guide",
			"Stand-up Comedian",
		},
		IdealCareers: []string{
			"Chief Data Officer",
			"Research Director",
			"Principal Scientist",
			"University Professor",
			"Chief Technology Officer",
			"Medical Director",
		},
	},
	{
		ID:          types.Shark,
		Name:        "Shark",
		Emoji:       "\U0001F988",
		Title:       "The Dominant Leader",
		Description: "Sharks are bold, decisive, and dominant. They excel at taking charge and driving results through direct action and challenge-driven approaches.",
		Traits:      []string{"Bold", "Decisive", "Dominant", "Direct", "Challenge-driven"},
		Strengths: []string{
			"Natural leaders who thrive under pressure",
			"Goal-oriented with exceptional focus on results",
			"Quick decision-making abilities in challenging situations",
			"Confident and comfortable taking charge of situations",
			"Drives teams to achieve ambitious goals through determination",
		},
		Challenges: []string{
			"May be blunt or insensitive in communication",
			"Can be perceived as domineering or overly aggressive",
			"Might overlook team input in favor of quick action",
			"May struggle with patience and collaborative processes",
		},
		WorkStyle:      "Excels in high-pressure, fast-paced environments where quick decisions and bold leadership are valued. Prefers autonomy and control.",
		Communication:  "Direct, assertive, and results-focused. Values efficiency over diplomacy and may be blunt in delivery.",
		Relationships:  "Forms relationships based on mutual respect for competence and results. Values strength and determination in others.",
		Leadership:     "Leads through dominance and decisive action. Takes charge naturally and pushes teams toward ambitious goals.",
		Motivation:     "Driven by challenges, competition, and the opportunity to lead and achieve significant results.",
		Stress:         "Becomes stressed when progress is slow, when micromanaged, or when forced into overly collaborative decision-making.",
		Growth:         "Should focus on developing empathy, patience, and collaborative leadership skills to balance their direct approach.",
		CompatibleWith: []types.Archetype{types.Peacock, types.Owl},
		ConflictsWith:  []types.Archetype{types.Dove},
		FamousPeople:   []string{"Michael Jordan", "Serena Williams", "Kobe Bryant", "Martha Stewart", "Simon Cowell"},
		CareersToAvoid: []string{
			"Social Worker",
			"Elementary School Teacher",
			"Grief Counselor",
			"Non-profit Coordinator",
			"Customer Service Representative",
		},
		IdealCareers: []string{
			"Investment Banking Managing Director",
			"Private Equity Partner",
			"Chief Operating Officer",
			"Trial Attorney",
			"Professional Athlete",
			"Hedge Fund Manager",
		},
	},
}

// byID indexes profiles for O(1) lookup. Built once at init.
var byID = func() map[types.Archetype]*Profile {
	m := make(map[types.Archetype]*Profile, len(profiles))
	for i := range profiles {
		m[profiles[i].ID] = &profiles[i]
	}
	return m
}()

// Order returns the archetype identifiers in declared catalog order.
func Order() []types.Archetype {
	out := make([]types.Archetype, len(profiles))
	for i := range profiles {
		out[i] = profiles[i].ID
	}
	return out
}

// Profiles returns a copy of the full archetype catalog in declared order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	for i := range profiles {
		out[i] = copyProfile(&profiles[i])
	}
	return out
}

// Lookup returns the profile for id. The second return is false when the
// id is not part of the catalog.
func Lookup(id types.Archetype) (Profile, bool) {
	p, ok := byID[id]
	if !ok {
		return Profile{}, false
	}
	return copyProfile(p), true
}

func copyProfile(p *Profile) Profile {
	out := *p
	out.Traits = append([]string(nil), p.Traits...)
	out.Strengths = append([]string(nil), p.Strengths...)
	out.Challenges = append([]string(nil), p.Challenges...)
	out.CompatibleWith = append([]types.Archetype(nil), p.CompatibleWith...)
	out.ConflictsWith = append([]types.Archetype(nil), p.ConflictsWith...)
	out.FamousPeople = append([]string(nil), p.FamousPeople...)
	out.CareersToAvoid = append([]string(nil), p.CareersToAvoid...)
	out.IdealCareers = append([]string(nil), p.IdealCareers...)
	return out
}
