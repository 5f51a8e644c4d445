// Command telemetrysummary condenses the JSONL telemetry written by folio
// into per-event and per-session counts.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type telemetryEvent struct {
	SessionID string            `json:"session_id"`
	Timestamp time.Time         `json:"timestamp"`
	Event     string            `json:"event"`
	Section   string            `json:"section,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
}

type eventAggregate struct {
	Event string    `json:"event"`
	Count int       `json:"count"`
	First time.Time `json:"first"`
	Last  time.Time `json:"last"`
}

type sessionAggregate struct {
	SessionID string         `json:"session_id"`
	Start     time.Time      `json:"start"`
	End       time.Time      `json:"end"`
	Events    int            `json:"events"`
	Sections  map[string]int `json:"sections,omitempty"`
	Submitted bool           `json:"contact_submitted"`
}

type telemetryReport struct {
	Source    string             `json:"source"`
	Lines     int                `json:"lines"`
	Skipped   []int              `json:"skipped_lines,omitempty"`
	Events    []eventAggregate   `json:"events"`
	Sessions  []sessionAggregate `json:"sessions"`
	Anomalies []string           `json:"anomalies,omitempty"`
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "telemetrysummary: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var inputPath, outputPath string
	cmd := &cobra.Command{
		Use:           "telemetrysummary",
		Short:         "Summarize folio telemetry",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inputPath == "" {
				return errors.New("missing --in path")
			}
			f, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			report, err := summarize(inputPath, f)
			if err != nil {
				return fmt.Errorf("parse telemetry: %w", err)
			}
			encoded, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			if outputPath == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return err
			}
			if err := os.WriteFile(outputPath, append(encoded, '\n'), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inputPath, "in", "", "telemetry JSONL path (required)")
	cmd.Flags().StringVar(&outputPath, "out", "", "output JSON path (optional, defaults to stdout)")
	return cmd
}

func summarize(source string, r io.Reader) (telemetryReport, error) {
	report := telemetryReport{Source: source}
	events := map[string]*eventAggregate{}
	sessions := map[string]*sessionAggregate{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		report.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var ev telemetryEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil || ev.Event == "" {
			report.Skipped = append(report.Skipped, report.Lines)
			continue
		}

		agg, ok := events[ev.Event]
		if !ok {
			agg = &eventAggregate{Event: ev.Event, First: ev.Timestamp, Last: ev.Timestamp}
			events[ev.Event] = agg
		}
		agg.Count++
		if ev.Timestamp.Before(agg.First) {
			agg.First = ev.Timestamp
		}
		if ev.Timestamp.After(agg.Last) {
			agg.Last = ev.Timestamp
		}

		s, ok := sessions[ev.SessionID]
		if !ok {
			s = &sessionAggregate{SessionID: ev.SessionID, Start: ev.Timestamp, End: ev.Timestamp}
			sessions[ev.SessionID] = s
		}
		s.Events++
		if ev.Timestamp.Before(s.Start) {
			s.Start = ev.Timestamp
		}
		if ev.Timestamp.After(s.End) {
			s.End = ev.Timestamp
		}
		switch ev.Event {
		case "section_viewed":
			if s.Sections == nil {
				s.Sections = map[string]int{}
			}
			s.Sections[ev.Section]++
		case "contact_submitted":
			s.Submitted = true
		}
	}
	if err := scanner.Err(); err != nil {
		return report, err
	}

	for _, agg := range events {
		report.Events = append(report.Events, *agg)
	}
	sort.Slice(report.Events, func(i, j int) bool {
		if report.Events[i].Count != report.Events[j].Count {
			return report.Events[i].Count > report.Events[j].Count
		}
		return report.Events[i].Event < report.Events[j].Event
	})
	for _, s := range sessions {
		report.Sessions = append(report.Sessions, *s)
	}
	sort.Slice(report.Sessions, func(i, j int) bool { return report.Sessions[i].Start.Before(report.Sessions[j].Start) })
	report.Anomalies = detectAnomalies(report.Sessions)
	return report, nil
}

func detectAnomalies(sessions []sessionAggregate) []string {
	var out []string
	for _, s := range sessions {
		if s.SessionID == "" {
			out = append(out, "events without a session id")
			continue
		}
		if d := s.End.Sub(s.Start); d > 24*time.Hour {
			out = append(out, fmt.Sprintf("session %s spans %s", s.SessionID, d.Round(time.Minute)))
		}
	}
	return out
}
