package queuevalues

// Ranked queues of interest for the profile standings.
var RankedQueueValue = map[int]string{
	420: "RANKED_SOLO_5x5",
	440: "RANKED_FLEX_5x5",
}

// Display names for the known queue ids.
var QueueNames = map[int]string{
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	900:  "URF",
	1020: "One For All",
	1300: "Nexus Blitz",
	1700: "Arena",
}

// IsRankedQueueType reports whether a league queue type string is one of the
// ranked queues of interest.
func IsRankedQueueType(queueType string) bool {
	for _, name := range RankedQueueValue {
		if name == queueType {
			return true
		}
	}
	return false
}

// QueueName returns the display name for a queue id.
// Unknown ids are treated as custom games.
func QueueName(queueId int) string {
	if name, ok := QueueNames[queueId]; ok {
		return name
	}
	return "Custom"
}
