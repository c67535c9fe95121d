package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (a *App) AddReminder(ctx context.Context) error {
	msg, err := getSimpleText(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	repeat, err := getSimpleText(a.reader, "Repeat (diario/semanal)", a.out)
	if err != nil {
		return err
	}
	clock, err := getSimpleText(a.reader, "Time (HH:MM or 3:04 PM)", a.out)
	if err != nil {
		return err
	}

	r, err := a.client.AddReminder(ctx, msg, repeat, clock)
	if err != nil {
		return err
	}
	a.printf("Reminder %s saved, next at %s\n", r.ID, r.NextFire.Local().Format(timestampLayout))
	return nil
}

func (a *App) Reminders(ctx context.Context) error {
	rems, err := a.client.ListReminders(ctx)
	if err != nil {
		return err
	}
	if len(rems) == 0 {
		a.printf("No reminders\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tREPEAT\tNEXT\tMESSAGE")
	for _, r := range rems {
		repeat := r.Repeat
		if r.Weekday != "" {
			repeat += " (" + r.Weekday + ")"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Clock, repeat, r.NextFire.Local().Format(timestampLayout), r.Message)
	}
	return tw.Flush()
}

func (a *App) DeleteReminder(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Reminder ID", a.out)
	if err != nil {
		return err
	}
	if err := a.client.DeleteReminder(ctx, id); err != nil {
		return err
	}
	a.printf("Reminder deleted\n")
	return nil
}
