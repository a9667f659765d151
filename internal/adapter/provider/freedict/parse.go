package freedict

import (
	"github.com/heartmarshall/dictlookup/internal/provider"
)

// parseEntry converts the first API entry into a provider.Entry. This is the
// only place the upstream shape is translated; a provider swap starts here.
func parseEntry(entry apiEntry) (*provider.Entry, error) {
	audio, ok := firstAudio(entry.Phonetics)
	if !ok {
		return nil, &NoAudioAvailableError{Word: entry.Word}
	}

	var phonetic *string
	if entry.Phonetic != nil {
		p := *entry.Phonetic
		phonetic = &p
	}

	return &provider.Entry{
		Word:       entry.Word,
		Phonetic:   phonetic,
		Audio:      audio,
		SourceURLs: cloneStrings(entry.SourceURLs),
		Meanings:   parseMeanings(entry.Meanings),
	}, nil
}

// firstAudio returns the audio URL of the first phonetic that has one.
func firstAudio(phonetics []apiPhonetic) (string, bool) {
	for _, ph := range phonetics {
		if ph.Audio != "" {
			return ph.Audio, true
		}
	}
	return "", false
}

// parseMeanings maps meaning groups in upstream order. The API lists nouns
// before verbs; that order is passed through, never re-sorted.
func parseMeanings(meanings []apiMeaning) []provider.MeaningGroup {
	groups := make([]provider.MeaningGroup, 0, len(meanings))
	for _, m := range meanings {
		defs := make([]provider.Definition, 0, len(m.Definitions))
		for _, d := range m.Definitions {
			def := provider.Definition{
				Details:  d.Definition,
				Synonyms: cloneStrings(d.Synonyms),
				Antonyms: cloneStrings(d.Antonyms),
			}
			if d.Example != "" {
				ex := d.Example
				def.Examples = &ex
			}
			defs = append(defs, def)
		}

		groups = append(groups, provider.MeaningGroup{
			SpeechPart:  m.PartOfSpeech,
			Definitions: defs,
			Synonyms:    cloneStrings(m.Synonyms),
			Antonyms:    cloneStrings(m.Antonyms),
		})
	}
	return groups
}

// cloneStrings copies s so callers never alias decoder memory. nil becomes empty.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
