package utils

import (
	"encoding/json"
	"fmt"
	"lingo/config"

	"github.com/go-resty/resty/v2"
)

// DictionaryEntry is the subset of the dictionary API response surfaced to
// exercise authors as writing hints.
type DictionaryEntry struct {
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// LookupWord fetches dictionary entries for a word from the configured
// dictionary API.
func LookupWord(word string) ([]DictionaryEntry, error) {
	if word == "" {
		return nil, fmt.Errorf("word is required")
	}

	client := resty.New()
	req := client.R()
	if config.AppConfig.DictionaryApiKey != "" {
		req.SetHeader("Authorization", "Bearer "+config.AppConfig.DictionaryApiKey)
	}

	resp, err := req.Get(fmt.Sprintf("%s/%s", config.AppConfig.DictionaryApiURL, word))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dictionary entry: %v", err)
	}

	if resp.StatusCode() == 404 {
		return []DictionaryEntry{}, nil
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("dictionary API error: %s", resp.String())
	}

	var entries []DictionaryEntry
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary response: %v", err)
	}

	return entries, nil
}
