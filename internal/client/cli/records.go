package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/api"
)

const timestampLayout = "2006-01-02 15:04"

var now = time.Now

// parseTimestamp reads "YYYY-MM-DD HH:MM" in local time; empty means now.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return now(), nil
	}
	t, err := time.ParseInLocation(timestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected %q: %w", timestampLayout, err)
	}
	return t, nil
}

func parseWeight(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	w, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil, fmt.Errorf("weight: %w", err)
	}
	return &w, nil
}

func splitSymptoms(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (a *App) AddRecord(ctx context.Context) error {
	var rec api.Record

	ts, err := getSimpleText(a.reader, "When? (YYYY-MM-DD HH:MM, empty for now)", a.out)
	if err != nil {
		return err
	}
	if rec.Timestamp, err = parseTimestamp(ts); err != nil {
		return err
	}

	if rec.Mood, err = getSimpleText(a.reader, "Mood (feliz, contento, neutral, cansado, triste, ansioso, estresado, deprimido, enojado)", a.out); err != nil {
		return err
	}
	if rec.BloodPressure, err = getSimpleText(a.reader, "Blood pressure (e.g. 120/80)", a.out); err != nil {
		return err
	}

	hr, err := getSimpleText(a.reader, "Heart rate (bpm)", a.out)
	if err != nil {
		return err
	}
	if rec.HeartRate, err = strconv.Atoi(hr); err != nil {
		return fmt.Errorf("heart rate: %w", err)
	}

	w, err := getSimpleText(a.reader, "Weight in kg (optional)", a.out)
	if err != nil {
		return err
	}
	if rec.Weight, err = parseWeight(w); err != nil {
		return err
	}

	symptoms, err := getSimpleText(a.reader, "Symptoms, comma separated (optional)", a.out)
	if err != nil {
		return err
	}
	rec.Symptoms = splitSymptoms(symptoms)

	if rec.Notes, err = getMultiline(a.reader, "Notes (optional)", a.out); err != nil {
		return err
	}

	id, err := a.client.AddRecord(ctx, rec)
	if err != nil {
		return err
	}
	a.printf("Record saved: %s\n", id)
	return nil
}

func (a *App) Records(ctx context.Context) error {
	recs, err := a.client.ListRecords(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		a.printf("No records yet\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tMOOD\tBP\tHR\tWEIGHT\tSYMPTOMS")
	for _, r := range recs {
		weight := "-"
		if r.Weight != nil {
			weight = strconv.FormatFloat(*r.Weight, 'f', 1, 64)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.Timestamp.Local().Format(timestampLayout), r.Mood, r.BloodPressure, r.HeartRate, weight, strings.Join(r.Symptoms, ", "))
	}
	return tw.Flush()
}

func (a *App) DeleteRecord(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Record ID", a.out)
	if err != nil {
		return err
	}
	if err := a.client.DeleteRecord(ctx, id); err != nil {
		return err
	}
	a.printf("Record deleted\n")
	return nil
}

func (a *App) Trends(ctx context.Context) error {
	t, err := a.client.Trends(ctx)
	if err != nil {
		return err
	}
	a.printSeries("Mood (1-5)", t.Mood)
	a.printSeries("Heart rate", t.HeartRate)
	a.printSeries("Weight", t.Weight)
	return nil
}

func (a *App) printSeries(title string, points []api.TrendPoint) {
	a.printf("%s:\n", title)
	if len(points) == 0 {
		a.printf("  (no data)\n")
		return
	}
	for _, p := range points {
		a.printf("  %s  %6.1f\n", p.Date.Local().Format("2006-01-02"), p.Value)
	}
}
