package guide

import "strings"

// Topic is the subject category of a chat message.
type Topic string

const (
	TopicCareer   Topic = "career"
	TopicLove     Topic = "love"
	TopicHealth   Topic = "health"
	TopicPurpose  Topic = "purpose"
	TopicGuidance Topic = "guidance"
	TopicGeneral  Topic = "general"
)

func (t Topic) String() string { return string(t) }

type topicKeywords struct {
	topic Topic
	words []string
}

// topicOrder is the match priority: the first category with any keyword hit wins.
var topicOrder = []topicKeywords{
	{TopicCareer, []string{"career", "job", "work", "profession", "occupation"}},
	{TopicLove, []string{"love", "relationship", "partner", "marriage", "dating", "romance"}},
	{TopicHealth, []string{"health", "wellness", "fitness", "diet", "exercise", "healing"}},
	{TopicPurpose, []string{"purpose", "meaning", "mission", "destiny", "path", "calling"}},
	{TopicGuidance, []string{"guide", "advice", "suggest", "recommend", "help", "guidance"}},
}

// ClassifyTopic matches the lower-cased message against each keyword list by
// substring containment and returns the first matching topic, or TopicGeneral.
func ClassifyTopic(message string) Topic {
	lower := strings.ToLower(message)
	for _, entry := range topicOrder {
		for _, w := range entry.words {
			if strings.Contains(lower, w) {
				return entry.topic
			}
		}
	}
	return TopicGeneral
}
