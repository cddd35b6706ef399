// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

const variablesPrompt = "Number of variables n: "

var errNoInput = errors.New("symdiag: no input")

// readVariables reads a single integer line from in. On a terminal the line
// is read through readline with a prompt; otherwise the first line is taken
// as-is.
func readVariables(in io.Reader, out io.Writer, interactive bool) (int, error) {
	var (
		line string
		err  error
	)
	if interactive {
		line, err = promptLine(in, out, variablesPrompt)
	} else {
		line, err = firstLine(in)
	}
	if err != nil {
		return 0, err
	}

	return parseCount(line)
}

func promptLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	rc, ok := in.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(in)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
		Stdin:  rc,
		Stdout: out,
	})
	if err != nil {
		return "", fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return "", errNoInput
		}
		return "", fmt.Errorf("readline: %w", err)
	}

	return line, nil
}

func firstLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	if strings.TrimSpace(line) == "" {
		return "", errNoInput
	}

	return line, nil
}

// parseCount parses a decimal integer argument. Range checks are left to the
// symmetry and gray packages so their sentinels reach the user.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", strings.TrimSpace(s))
	}

	return n, nil
}
