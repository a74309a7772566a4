// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"github.com/rs/zerolog/log"
)

// Sink receives boundary events as they are committed. Publish is called
// after the state change it reports has fully taken effect, never for
// rejected operations.
type Sink interface {
	Publish(e Event)
}

// LogSink writes every event to the structured log.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Publish(e Event) {
	log.Info().
		Str("sig", string(e.Sig())).
		Str("topic", e.Sig().GetTopic().Hex()).
		Msgf("%+v", e)
}

// ChannelSink buffers events on a channel for an off-system observer.
// Events published when the buffer is full are dropped, the observer is
// expected to keep up.
type ChannelSink struct {
	events chan Event
}

func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{
		events: make(chan Event, buffer),
	}
}

func (s *ChannelSink) Publish(e Event) {
	select {
	case s.events <- e:
	default:
		log.Warn().Str("sig", string(e.Sig())).Msg("Event buffer full, dropping event")
	}
}

func (s *ChannelSink) Events() <-chan Event {
	return s.events
}

// MultiSink fans an event out to multiple sinks.
type MultiSink struct {
	sinks []Sink
}

func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (s *MultiSink) Publish(e Event) {
	for _, sink := range s.sinks {
		sink.Publish(e)
	}
}
