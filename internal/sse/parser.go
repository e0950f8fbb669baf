// SPDX-License-Identifier: MIT

// Package sse consumes Server-Sent Event streams from the Thin-Waist API:
// a field-level parser plus a reconnecting consumer with heartbeat
// supervision.
package sse

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Named events emitted on the Thin-Waist live streams.
const (
	EventDialogue  = "dialogue_event"
	EventAwareness = "awareness_event"
	EventPing      = "ping"
)

// Event is a single parsed Server-Sent Event.
type Event struct {
	Type  string // "event:" field; defaults to "message"
	Data  string // "data:" lines joined with newlines
	ID    string // "id:" field
	Retry int    // "retry:" field in milliseconds, -1 if absent
}

// Parser reads events from a stream per the EventSource wire format:
// comment lines are skipped, multi-line data is joined, a blank line
// dispatches the accumulated event, and CR, LF and CRLF all terminate
// lines.
type Parser struct {
	lines *bufio.Reader
	done  bool

	eventType string
	data      []string
	id        string
	retry     int
}

// NewParser returns a parser reading from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{lines: bufio.NewReaderSize(r, 4096), retry: -1}
}

// Next returns the next event, or io.EOF when the stream ends. A stream
// that ends mid-event dispatches the pending data first.
func (p *Parser) Next() (Event, error) {
	if p.done {
		return Event{}, io.EOF
	}

	for {
		line, err := p.readLine()
		if err != nil {
			p.done = true
			if err == io.EOF && len(p.data) > 0 {
				return p.dispatch(), nil
			}
			return Event{}, err
		}

		switch {
		case line == "":
			if len(p.data) == 0 {
				continue // consecutive blank lines dispatch nothing
			}
			return p.dispatch(), nil
		case strings.HasPrefix(line, ":"):
			continue
		default:
			p.field(splitField(line))
		}
	}
}

// splitField separates "field: value". Without a colon the whole line is
// the field name; a single leading space in the value is stripped.
func splitField(line string) (string, string) {
	i := strings.IndexByte(line, ':')
	if i == -1 {
		return line, ""
	}
	value := line[i+1:]
	if len(value) > 0 && value[0] == ' ' {
		value = value[1:]
	}
	return line[:i], value
}

func (p *Parser) field(name, value string) {
	switch name {
	case "event":
		p.eventType = value
	case "data":
		p.data = append(p.data, value)
	case "id":
		p.id = value
	case "retry":
		if n, err := strconv.Atoi(value); err == nil {
			p.retry = n
		}
	}
	// Unknown fields are ignored per the EventSource format.
}

func (p *Parser) dispatch() Event {
	evt := Event{
		Type:  p.eventType,
		Data:  strings.Join(p.data, "\n"),
		ID:    p.id,
		Retry: p.retry,
	}
	if evt.Type == "" {
		evt.Type = "message"
	}
	p.eventType, p.data, p.id, p.retry = "", nil, "", -1
	return evt
}

// readLine reads one line, treating CR, LF and CRLF as terminators.
// bufio.Scanner only understands LF/CRLF, so lines are assembled by hand.
func (p *Parser) readLine() (string, error) {
	var line strings.Builder
	for {
		b, err := p.lines.ReadByte()
		if err != nil {
			if err == io.EOF && line.Len() > 0 {
				return line.String(), nil
			}
			return "", err
		}

		switch b {
		case '\n':
			return line.String(), nil
		case '\r':
			if next, err := p.lines.ReadByte(); err == nil && next != '\n' {
				_ = p.lines.UnreadByte()
			}
			return line.String(), nil
		default:
			line.WriteByte(b)
		}
	}
}
