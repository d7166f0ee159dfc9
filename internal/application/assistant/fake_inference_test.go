package assistant_test

import (
	"context"
	"sync"
)

type inferenceCall struct {
	Op          string
	Instruction string
	ImageURL    string
	Prompt      string
	HasDeadline bool
}

// fakeInference implementación en memoria de ports.InferenceService.
type fakeInference struct {
	mu             sync.Mutex
	calls          []inferenceCall
	description    string
	recommendation string
	describeErr    error
	completeErr    error
}

func (f *fakeInference) DescribeImage(ctx context.Context, instruction, imageURL string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := ctx.Deadline()
	f.calls = append(f.calls, inferenceCall{Op: "describe", Instruction: instruction, ImageURL: imageURL, HasDeadline: ok})
	if f.describeErr != nil {
		return "", f.describeErr
	}
	return f.description, nil
}

func (f *fakeInference) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := ctx.Deadline()
	f.calls = append(f.calls, inferenceCall{Op: "complete", Prompt: prompt, HasDeadline: ok})
	if f.completeErr != nil {
		return "", f.completeErr
	}
	return f.recommendation, nil
}

func (f *fakeInference) Calls() []inferenceCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]inferenceCall(nil), f.calls...)
}
