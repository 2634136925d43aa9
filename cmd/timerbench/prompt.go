package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mkraun/timerbench/pkg/bench/types"
)

// editParams walks the four sweep parameters, showing the current value and
// accepting a replacement. An empty line keeps the current value. The second
// return reports whether anything changed.
func editParams(r *bufio.Reader, p types.Params) (types.Params, bool, error) {
	changed := false

	askFloat := func(desc string, current float64) (float64, error) {
		input, err := ask(r, desc, fmt.Sprintf("%.4f ms", current))
		if err != nil || input == "" {
			return current, err
		}
		v, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", desc, input, err)
		}
		changed = true
		return v, nil
	}

	var err error
	if p.StartValue, err = askFloat("start value", p.StartValue); err != nil {
		return p, changed, err
	}
	if p.IncrementValue, err = askFloat("increment value", p.IncrementValue); err != nil {
		return p, changed, err
	}
	if p.EndValue, err = askFloat("end value", p.EndValue); err != nil {
		return p, changed, err
	}

	input, err := ask(r, "sample value", strconv.Itoa(p.SampleValue))
	if err != nil {
		return p, changed, err
	}
	if input != "" {
		v, err := strconv.Atoi(input)
		if err != nil {
			return p, changed, fmt.Errorf("invalid sample value %q: %w", input, err)
		}
		p.SampleValue = v
		changed = true
	}

	return p, changed, nil
}

// ask prompts for a new value, returning the trimmed input. End of input
// counts as keeping the current value.
func ask(r *bufio.Reader, desc, current string) (string, error) {
	fmt.Printf("%s: %s (current)\n", desc, current)
	fmt.Printf("Enter new %s (or press Enter to keep current): ", desc)

	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(r *bufio.Reader, question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// pressEnter blocks until the user presses Enter.
func pressEnter(r *bufio.Reader, msg string) error {
	fmt.Println(msg)
	if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
		return err
	}
	return nil
}
