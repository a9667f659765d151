package provider

// Entry is the normalized dictionary entry handed to callers. Nothing outside
// the provider adapters sees the upstream payload shape.
type Entry struct {
	Word       string         `json:"word"`
	Phonetic   *string        `json:"phonetic,omitempty"`
	Audio      string         `json:"audio"`
	SourceURLs []string       `json:"sourceUrls"`
	Meanings   []MeaningGroup `json:"meanings"`
}

// MeaningGroup bundles the definitions, synonyms and antonyms of one part of speech.
type MeaningGroup struct {
	SpeechPart  string       `json:"speechPart"`
	Definitions []Definition `json:"definitions"`
	Synonyms    []string     `json:"synonyms"`
	Antonyms    []string     `json:"antonyms"`
}

// Definition is a single sense within a MeaningGroup.
// Examples holds at most one usage sentence; nil when the source has none.
type Definition struct {
	Details  string   `json:"details"`
	Synonyms []string `json:"synonyms"`
	Antonyms []string `json:"antonyms"`
	Examples *string  `json:"examples,omitempty"`
}
