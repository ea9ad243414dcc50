package domain

import "strings"

// Topic is the closed set of quiz categories.
type Topic string

const (
	TopicAgility  Topic = "agility"
	TopicSports   Topic = "sports"
	TopicGeneral  Topic = "general"
	TopicCustomer Topic = "customer"
)

// Topics lists every known topic in display order.
func Topics() []Topic {
	return []Topic{TopicAgility, TopicSports, TopicGeneral, TopicCustomer}
}

// topicAliases folds the legacy naming schemes that accumulated in the
// question data ("culture"/"generalCulture" vs "general", "customerCare"
// vs "customer") into the canonical enumeration.
var topicAliases = map[string]Topic{
	"agility":        TopicAgility,
	"sports":         TopicSports,
	"general":        TopicGeneral,
	"culture":        TopicGeneral,
	"generalculture": TopicGeneral,
	"customer":       TopicCustomer,
	"customercare":   TopicCustomer,
}

// ParseTopic normalizes raw into a known Topic, matching case-insensitively.
func ParseTopic(raw string) (Topic, error) {
	topic, ok := topicAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", ErrUnknownTopic
	}
	return topic, nil
}
