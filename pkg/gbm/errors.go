package gbm

import "fmt"

// ParameterError is returned when a simulation parameter is invalid
type ParameterError struct {
	Name string
	Msg  string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Msg)
}

// DegenerateDrawError is returned when the sampler yields a non-finite deviate, which happens when the uniform
// source returns exactly 0.
type DegenerateDrawError struct {
	Step  int
	Value float64
}

func (e *DegenerateDrawError) Error() string {
	return fmt.Sprintf("degenerate normal draw %v at step %d", e.Value, e.Step)
}

// StepError wraps a price conversion failure with the step at which it happened
type StepError struct {
	Step int
	err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.err)
}

func (e *StepError) Unwrap() error {
	return e.err
}
