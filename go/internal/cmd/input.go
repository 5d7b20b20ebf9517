package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/mcdev12/reaction/go/internal/game"
	"github.com/rs/zerolog/log"
)

type command uint8

const (
	cmdNone command = iota
	cmdEdges
	cmdStatus
	cmdQuit
)

// parseLine maps one line of input to button edges. Each character of a
// run like "ppp" is a separate edge, which is how contact bounce looks.
func parseLine(line string) (command, []game.Button) {
	line = strings.ToLower(strings.TrimSpace(line))
	switch line {
	case "", "p", "press":
		return cmdEdges, []game.Button{game.ButtonPrimary}
	case "r", "s", "reset":
		return cmdEdges, []game.Button{game.ButtonSecondary}
	case "?", "status":
		return cmdStatus, nil
	case "q", "quit", "exit":
		return cmdQuit, nil
	}

	var edges []game.Button
	for _, ch := range line {
		switch ch {
		case 'p':
			edges = append(edges, game.ButtonPrimary)
		case 'r', 's':
			edges = append(edges, game.ButtonSecondary)
		default:
			return cmdNone, nil
		}
	}
	return cmdEdges, edges
}

// readButtons feeds edges from in until EOF, a quit command or ctx is done.
// It closes edges on return.
func readButtons(ctx context.Context, in io.Reader, edges chan<- game.Button, status func()) {
	defer close(edges)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, buttons := parseLine(scanner.Text())
		switch cmd {
		case cmdQuit:
			return
		case cmdStatus:
			status()
		case cmdNone:
			log.Warn().Str("input", scanner.Text()).Msg("unknown input; use p, r, ? or q")
		case cmdEdges:
			for _, b := range buttons {
				select {
				case edges <- b:
				case <-ctx.Done():
					return
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("failed to read input")
	}
}
