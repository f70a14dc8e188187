package model

// Evidence is the result of one retrieval attempt for one claim: the best
// matching snippet and its source locator. Retrieval yielding no evidence is
// represented as a nil *Evidence, which is a valid terminal state rather
// than an error.
type Evidence struct {
	Content string `json:"content"` // Snippet text from the source
	URL     string `json:"url"`     // Locator of the originating source
}
