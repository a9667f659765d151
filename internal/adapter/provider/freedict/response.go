package freedict

// apiEntry is a single entry of the FreeDictionary response array.
// The API returns one entry per etymology; only the first is used.
// Slice fields stay nil when the key is absent, which the schema check rejects
// for the required ones before the entry is parsed.
type apiEntry struct {
	Word       string        `json:"word"`
	Phonetic   *string       `json:"phonetic"`
	Phonetics  []apiPhonetic `json:"phonetics"`
	SourceURLs []string      `json:"sourceUrls"`
	Meanings   []apiMeaning  `json:"meanings"`
}

// apiPhonetic is one pronunciation: a transcription, an audio URL, or both.
type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// apiMeaning groups definitions sharing a part of speech.
type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
	Synonyms     []string        `json:"synonyms"`
	Antonyms     []string        `json:"antonyms"`
}

// apiDefinition is a single definition; Example is singular upstream.
type apiDefinition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// apiError is the object the API sends instead of an array when it has no entry:
//
//	{"title":"No Definitions Found","message":"...","resolution":"..."}
type apiError struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
}
