// Package testable lets command tests answer interactive prompts.
package testable

import (
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/core"
)

// Answer is a scripted response to a prompt: a string for Input and Select
// prompts or a bool for Confirm prompts.
type Answer interface{}

var answers []Answer
var scripted bool

// WithAnswers makes AskOne return the given answers in order instead of
// prompting, until the test ends. It fails the test when a prompt is asked
// after the answers are used up.
func WithAnswers(t *testing.T, a ...Answer) {
	t.Helper()
	scripted = true
	answers = a
	t.Cleanup(func() {
		if len(answers) > 0 {
			t.Errorf("%d scripted answers were not used", len(answers))
		}
		scripted = false
		answers = nil
	})
}

// AskOne runs the survey prompt, or writes the next scripted answer into out
// when answers were configured with WithAnswers.
func AskOne(in survey.Prompt, out interface{}, opts ...survey.AskOpt) error {
	if !scripted {
		return survey.AskOne(in, out, opts...)
	}
	if len(answers) == 0 {
		panic("testable: prompt asked with no scripted answers left")
	}
	next := answers[0]
	answers = answers[1:]
	return core.WriteAnswer(out, "", next)
}
