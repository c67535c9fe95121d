package cli

import (
	"context"
)

func (a *App) Recommend(ctx context.Context) error {
	res, err := a.client.GenerateRecommendation(ctx)
	if err != nil {
		return err
	}
	if res.NoData {
		a.printf("No records yet. Add a few with 'addrecord' first.\n")
		return nil
	}
	r := res.Recommendation
	a.printf("[%s] %s\n%s\n", r.GeneratedOn.Format("2006-01-02"), r.ID, r.Text)
	return nil
}

func (a *App) Recommendations(ctx context.Context) error {
	recs, err := a.client.ListRecommendations(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		a.printf("No recommendations\n")
		return nil
	}
	for _, r := range recs {
		a.printf("[%s] %s\n%s\n\n", r.GeneratedOn.Format("2006-01-02"), r.ID, r.Text)
	}
	return nil
}

// Accept marks a recommendation as followed, which removes it.
func (a *App) Accept(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Recommendation ID", a.out)
	if err != nil {
		return err
	}
	if err := a.client.AcceptRecommendation(ctx, id); err != nil {
		return err
	}
	a.printf("Recommendation accepted\n")
	return nil
}
