// Package prompts holds the built-in writing prompt deck.
package prompts

import "math/rand"

var deck = []string{
	"Write about a moment today when you changed your mind.",
	"What is something small that made you laugh recently?",
	"Describe the last time you felt completely out of your depth.",
	"Tell the story of an object you own that you would never throw away.",
	"When did someone surprise you this week?",
	"Write about a meal you remember better than most.",
	"What did you learn the hard way?",
	"Describe a place you only visited once but still think about.",
	"Write about the first time you did something you now do every day.",
	"What is a conversation you keep replaying in your head?",
	"Tell the story of a time you were wrong and glad about it.",
	"Describe a stranger you noticed today.",
	"What did you almost say but didn't?",
	"Write about a rule you broke.",
	"Describe a smell that takes you somewhere else.",
	"What is the best advice you ignored?",
	"Tell the story of a time you got lost.",
	"Write about a moment of kindness you witnessed.",
	"What were you afraid of as a child that you are not afraid of now?",
	"Describe the five minutes before something important happened.",
	"Write about a time a plan fell apart and something better happened.",
	"What is a small ritual you keep without thinking about it?",
	"Tell the story behind a scar, real or otherwise.",
	"Write about the last time you waited for something.",
}

// All returns a copy of the deck.
func All() []string {
	return append([]string(nil), deck...)
}

// Random picks a prompt other than exclude. rng may be nil.
func Random(exclude string, rng *rand.Rand) string {
	pool := make([]string, 0, len(deck))
	for _, p := range deck {
		if p != exclude {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		pool = deck
	}
	if rng == nil {
		return pool[rand.Intn(len(pool))]
	}
	return pool[rng.Intn(len(pool))]
}
