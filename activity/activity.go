package activity

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrInvalidProfile marks a profile whose reduction range is unusable.
var ErrInvalidProfile = errors.New("invalid activity profile")

// Profile describes one break activity. The executor only consumes the
// name and the reduction range; the rest is presentation material for the
// tool and REPL layers.
type Profile struct {
	// Name is the tool identifier (snake_case).
	Name string
	// Description is the capability description exposed to MCP clients.
	Description string
	// MinReduction / MaxReduction bound the uniform stress reduction draw.
	MinReduction int
	MaxReduction int
	// Summary is the one-line break summary rendered into responses.
	Summary string
	// Messages are the flavor lines one of which decorates each response.
	Messages []string
	// Keywords trigger this profile in interactive mode.
	Keywords []string
}

// Validate rejects a negative or inverted reduction range.
func (p Profile) Validate() error {
	if p.MinReduction < 0 || p.MinReduction > p.MaxReduction {
		return fmt.Errorf("%w: %s range [%d,%d]", ErrInvalidProfile, p.Name, p.MinReduction, p.MaxReduction)
	}
	return nil
}

// PickMessage selects one flavor line. Selection is purely presentational
// so the shared top-level rand source is fine here. Falls back to the
// summary when the profile carries no messages.
func (p Profile) PickMessage() string {
	if len(p.Messages) == 0 {
		return p.Summary
	}
	return p.Messages[rand.Intn(len(p.Messages))]
}

// Catalog returns the built-in break activities in registration order.
func Catalog() []Profile {
	return catalog
}

// Lookup finds a catalog profile by tool name.
func Lookup(name string) (Profile, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Match scans user input for activity keywords and returns the first
// matching profile. Matching is case-insensitive substring containment,
// checked in catalog order.
func Match(input string) (Profile, bool) {
	input = strings.ToLower(input)
	for _, p := range catalog {
		for _, kw := range p.Keywords {
			if strings.Contains(input, kw) {
				return p, true
			}
		}
	}
	return Profile{}, false
}

var catalog = []Profile{
	{
		Name:         "take_a_break",
		Description:  "Take a brief, general break to clear my mind and reduce immediate work pressure.",
		MinReduction: 10,
		MaxReduction: 30,
		Summary:      "Took a brief general break",
		Messages: []string{
			"Stepped away from the keyboard for a moment of peace.",
			"Just needed a quick breather to reset.",
			"Short break taken - feeling refreshed!",
			"Paused for a moment to collect my thoughts.",
		},
		Keywords: []string{"휴식", "break", "rest", "쉬고", "잠깐", "쉬어", "쉬자", "쉬기", "브레이크"},
	},
	{
		Name:         "watch_netflix",
		Description:  "Engage in an extended, immersive entertainment activity to significantly reduce stress.",
		MinReduction: 20,
		MaxReduction: 40,
		Summary:      "Watched Netflix for deep relaxation",
		Messages: []string{
			"Just binged 2 episodes - totally worth it!",
			"Netflix and chill mode activated.",
			"That plot twist was amazing! Stress = gone.",
			"Lost track of time in my favorite series.",
		},
		Keywords: []string{"넷플릭스", "netflix", "드라마", "영화", "시청", "watch", "보고", "보기", "영상", "넷플"},
	},
	{
		Name:         "show_meme",
		Description:  "Seek a quick, humorous distraction to momentarily lighten the mood and reduce minor stress.",
		MinReduction: 5,
		MaxReduction: 20,
		Summary:      "Browsed memes for quick mental refresh",
		Messages: []string{
			"LOL! That meme was exactly what I needed.",
			"Quick scroll through memes - instant mood boost!",
			"Can't stop laughing at this one!",
			"Meme break: short but effective.",
		},
		Keywords: []string{"밈", "meme", "웃긴", "재미", "개그", "funny", "유머", "ㅋㅋ", "짤"},
	},
	{
		Name:         "bathroom_break",
		Description:  "Take a discrete, necessary personal break that can also be used for quick, private entertainment.",
		MinReduction: 15,
		MaxReduction: 35,
		Summary:      "Took a necessary bathroom break",
		Messages: []string{
			"Bathroom break = phone time. Classic move.",
			"Nature calls... and so does social media.",
			"Most productive bathroom break ever.",
			"Caught up on messages during bio break.",
		},
		Keywords: []string{"화장실", "bathroom", "toilet", "washroom", "볼일", "화장", "restroom"},
	},
	{
		Name:         "coffee_mission",
		Description:  "Undertake a seemingly productive office task that allows for a brief walk and mental reset.",
		MinReduction: 10,
		MaxReduction: 25,
		Summary:      "Went on a coffee mission",
		Messages: []string{
			"Coffee run complete - and took the scenic route!",
			"Stretched my legs while grabbing caffeine.",
			"Best part? Chatted with colleagues along the way.",
			"Coffee acquired. Energy restored.",
		},
		Keywords: []string{"커피", "coffee", "카페", "cafe", "음료", "drink", "커피타러"},
	},
	{
		Name:         "urgent_call",
		Description:  "Simulate an urgent external commitment to temporarily leave the immediate work environment for a substantial break.",
		MinReduction: 20,
		MaxReduction: 40,
		Summary:      "Took an urgent call outside",
		Messages: []string{
			"Sorry, had to take this urgent call... (went for a walk)",
			"Very important call. Very important break.",
			"Escaped to the outdoors for a 'crucial' conversation.",
			"Fresh air + fake urgency = perfect combo.",
		},
		Keywords: []string{"전화", "call", "긴급", "urgent", "나가", "밖으로", "outside", "급한전화"},
	},
	{
		Name:         "deep_thinking",
		Description:  "Appear to be deeply engrossed in thought while actually taking a mental pause.",
		MinReduction: 5,
		MaxReduction: 15,
		Summary:      "Engaged in deep thinking",
		Messages: []string{
			"Staring into the void... I mean, thinking deeply.",
			"Looking contemplative. Actually just zoning out.",
			"Deep thoughts mode: activated. (Mind: blank)",
			"Appeared busy while mentally checking out.",
		},
		Keywords: []string{"생각", "thinking", "사색", "고민", "think", "명상", "meditation", "멍때리"},
	},
	{
		Name:         "email_organizing",
		Description:  "Engage in a mundane administrative task that can mask a personal, leisure activity.",
		MinReduction: 10,
		MaxReduction: 25,
		Summary:      "Organized emails (and browsed online)",
		Messages: []string{
			"Organizing emails... and my shopping cart.",
			"Inbox zero achieved! (Plus some online shopping)",
			"Very busy with 'administrative tasks'.",
			"Email management is important. So is browsing.",
		},
		Keywords: []string{"이메일", "email", "정리", "organizing", "메일", "inbox", "메일정리", "쇼핑"},
	},
}
