package models

import "time"

// Quota is the per-user state of the rolling generation window.
type Quota struct {
	// CallCount is the number of successful calls in the current window.
	CallCount int `json:"apiCallCount"`

	// ResetAt is the end of the current window, nil if none was opened.
	ResetAt *time.Time `json:"apiCallResetAt,omitempty"`
}

// Expired reports whether the window is absent or has elapsed at now.
func (q Quota) Expired(now time.Time) bool {
	return q.ResetAt == nil || !q.ResetAt.After(now)
}

// EffectiveCount is the count used for the allow/deny decision at now.
func (q Quota) EffectiveCount(now time.Time) int {
	if q.Expired(now) {
		return 0
	}
	return q.CallCount
}

// StemRequest is the payload of the sentence-stem generation endpoint.
type StemRequest struct {
	// Front is the meaning shown on the card front.
	Front string `json:"front"`

	// Back is the target term the generated sentence is built around.
	Back string `json:"back"`

	// Distractors are the other answer options the sentence must exclude.
	Distractors []string `json:"otherOptions"`
}

// StemPrompt is the validated input handed to the external generator.
type StemPrompt struct {
	Term        string
	Meaning     string
	Distractors []string
}

// StemResult is returned after a successful generation call.
type StemResult struct {
	SentenceStem string `json:"sentenceStem"`
	APICallCount int    `json:"apiCallCount"`
}
