package freedict

import (
	"testing"

	"github.com/heartmarshall/dictlookup/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleMeanings() []apiMeaning {
	return []apiMeaning{
		{
			PartOfSpeech: "noun",
			Definitions: []apiDefinition{
				{Definition: "A greeting.", Synonyms: []string{"hi", "hey"}},
				{Definition: "An utterance of hello.", Example: "She gave a cheerful hello."},
			},
			Synonyms: []string{"greeting", "salutation", "greeting"},
			Antonyms: []string{"goodbye"},
		},
		{
			PartOfSpeech: "interjection",
			Definitions:  []apiDefinition{{Definition: "Used as a greeting.", Antonyms: []string{"bye"}}},
		},
		{
			PartOfSpeech: "adjective",
		},
	}
}

func TestParseMeanings_PreservesOrderAndShape(t *testing.T) {
	t.Parallel()

	got := parseMeanings(sampleMeanings())

	want := []provider.MeaningGroup{
		{
			SpeechPart: "noun",
			Definitions: []provider.Definition{
				{Details: "A greeting.", Synonyms: []string{"hi", "hey"}, Antonyms: []string{}},
				{Details: "An utterance of hello.", Synonyms: []string{}, Antonyms: []string{}, Examples: strPtr("She gave a cheerful hello.")},
			},
			// Duplicates pass through untouched.
			Synonyms: []string{"greeting", "salutation", "greeting"},
			Antonyms: []string{"goodbye"},
		},
		{
			SpeechPart:  "interjection",
			Definitions: []provider.Definition{{Details: "Used as a greeting.", Synonyms: []string{}, Antonyms: []string{"bye"}}},
			Synonyms:    []string{},
			Antonyms:    []string{},
		},
		{
			SpeechPart:  "adjective",
			Definitions: []provider.Definition{},
			Synonyms:    []string{},
			Antonyms:    []string{},
		},
	}

	assert.Equal(t, want, got)
}

func TestParseMeanings_Idempotent(t *testing.T) {
	t.Parallel()

	input := sampleMeanings()

	first := parseMeanings(input)
	second := parseMeanings(input)

	assert.Equal(t, first, second)
	assert.Equal(t, sampleMeanings(), input, "input must not be mutated")
}

func TestParseMeanings_OutputDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	input := sampleMeanings()
	got := parseMeanings(input)

	got[0].Synonyms[0] = "changed"
	got[0].Definitions[0].Synonyms[0] = "changed"
	*got[0].Definitions[1].Examples = "changed"

	assert.Equal(t, sampleMeanings(), input)
}

func TestParseMeanings_Empty(t *testing.T) {
	t.Parallel()

	got := parseMeanings(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFirstAudio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		phonetics []apiPhonetic
		want      string
		wantOK    bool
	}{
		{name: "nil", phonetics: nil, wantOK: false},
		{name: "all empty", phonetics: []apiPhonetic{{Text: "/a/"}, {Text: "/b/", Audio: ""}}, wantOK: false},
		{name: "only entry", phonetics: []apiPhonetic{{Audio: "https://example.com/a.mp3"}}, want: "https://example.com/a.mp3", wantOK: true},
		{
			name: "first non-empty wins",
			phonetics: []apiPhonetic{
				{Text: "/a/"},
				{Audio: "https://example.com/uk.mp3"},
				{Audio: "https://example.com/us.mp3"},
			},
			want:   "https://example.com/uk.mp3",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := firstAudio(tt.phonetics)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEntry(t *testing.T) {
	t.Parallel()

	raw := apiEntry{
		Word:       "hello",
		Phonetic:   strPtr("/həˈloʊ/"),
		Phonetics:  []apiPhonetic{{Text: "/həˈloʊ/"}, {Audio: "https://example.com/hello-us.mp3"}},
		SourceURLs: []string{"https://en.wiktionary.org/wiki/hello"},
		Meanings:   sampleMeanings(),
	}

	entry, err := parseEntry(raw)
	require.NoError(t, err)

	assert.Equal(t, "hello", entry.Word)
	require.NotNil(t, entry.Phonetic)
	assert.Equal(t, "/həˈloʊ/", *entry.Phonetic)
	assert.NotSame(t, raw.Phonetic, entry.Phonetic)
	assert.Equal(t, "https://example.com/hello-us.mp3", entry.Audio)
	assert.Equal(t, raw.SourceURLs, entry.SourceURLs)
	assert.Len(t, entry.Meanings, 3)
}

func TestParseEntry_AbsentPhonetic(t *testing.T) {
	t.Parallel()

	entry, err := parseEntry(apiEntry{
		Word:      "hello",
		Phonetics: []apiPhonetic{{Audio: "https://example.com/hello.mp3"}},
	})
	require.NoError(t, err)
	assert.Nil(t, entry.Phonetic)
	assert.NotNil(t, entry.SourceURLs)
	assert.NotNil(t, entry.Meanings)
}

func TestParseEntry_NoAudio(t *testing.T) {
	t.Parallel()

	entry, err := parseEntry(apiEntry{Word: "hush", Phonetics: []apiPhonetic{}})
	require.ErrorIs(t, err, ErrNoAudioAvailable)
	assert.Nil(t, entry)
}
