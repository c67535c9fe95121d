package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/moodkeeper/internal/api"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/server/auth"
)

func (s *HTTPServer) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.PingResponse{Status: "OK"})
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterUserRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "register", err)
		return
	}
	user, err := s.services.Accounts.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(w, r, "register", err)
		return
	}
	writeJSON(w, http.StatusCreated, api.RegisterUserResponse{UserID: user.ID})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "login", err)
		return
	}
	tokens, err := s.services.Accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(w, r, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, api.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (s *HTTPServer) refresh(w http.ResponseWriter, r *http.Request) {
	var req api.RefreshTokenRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "refresh token", err)
		return
	}
	tokens, err := s.services.Accounts.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		s.fail(w, r, "refresh token", err)
		return
	}
	writeJSON(w, http.StatusOK, api.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (s *HTTPServer) addRecord(w http.ResponseWriter, r *http.Request) {
	var rec api.Record
	if err := decode(r, &rec); err != nil {
		s.fail(w, r, "add record", err)
		return
	}
	owner := auth.UserIDFromContext(r.Context())
	id, err := s.services.Records.Add(r.Context(), owner, rec.ToModel(owner))
	if err != nil {
		s.fail(w, r, "add record", err)
		return
	}
	writeJSON(w, http.StatusCreated, api.AddRecordResponse{ID: id})
}

func (s *HTTPServer) listRecords(w http.ResponseWriter, r *http.Request) {
	recs, err := s.services.Records.List(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		s.fail(w, r, "list records", err)
		return
	}
	writeJSON(w, http.StatusOK, api.ListRecordsResponse{Records: api.RecordsFromModels(recs)})
}

func (s *HTTPServer) deleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Records.Delete(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, "delete record", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) trends(w http.ResponseWriter, r *http.Request) {
	t, err := s.services.Records.Trends(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		s.fail(w, r, "trends", err)
		return
	}
	writeJSON(w, http.StatusOK, api.TrendsFromModel(t))
}

func (s *HTTPServer) generateRecommendation(w http.ResponseWriter, r *http.Request) {
	rec, err := s.services.Recommendations.Generate(r.Context(), auth.UserIDFromContext(r.Context()))
	if errors.Is(err, common.ErrNoData) {
		writeJSON(w, http.StatusOK, api.GenerateRecommendationResponse{NoData: true})
		return
	}
	if err != nil {
		s.fail(w, r, "generate recommendation", err)
		return
	}
	out := api.RecommendationFromModel(*rec)
	writeJSON(w, http.StatusCreated, api.GenerateRecommendationResponse{Recommendation: &out})
}

func (s *HTTPServer) listRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := s.services.Recommendations.List(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		s.fail(w, r, "list recommendations", err)
		return
	}
	writeJSON(w, http.StatusOK, api.ListRecommendationsResponse{Recommendations: api.RecommendationsFromModels(recs)})
}

func (s *HTTPServer) acceptRecommendation(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Recommendations.Accept(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, "accept recommendation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) addReminder(w http.ResponseWriter, r *http.Request) {
	var req api.AddReminderRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, r, "add reminder", err)
		return
	}
	rem, err := s.services.Reminders.Add(r.Context(), auth.UserIDFromContext(r.Context()), req.Message, req.Repeat, req.Clock)
	if err != nil {
		s.fail(w, r, "add reminder", err)
		return
	}
	writeJSON(w, http.StatusCreated, api.AddReminderResponse{Reminder: api.ReminderFromModel(rem.Reminder, rem.NextFire)})
}

func (s *HTTPServer) listReminders(w http.ResponseWriter, r *http.Request) {
	rems, err := s.services.Reminders.List(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		s.fail(w, r, "list reminders", err)
		return
	}
	out := make([]api.Reminder, 0, len(rems))
	for _, rem := range rems {
		out = append(out, api.ReminderFromModel(rem.Reminder, rem.NextFire))
	}
	writeJSON(w, http.StatusOK, api.ListRemindersResponse{Reminders: out})
}

func (s *HTTPServer) deleteReminder(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Reminders.Delete(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, "delete reminder", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) export(w http.ResponseWriter, r *http.Request) {
	res, err := s.services.Exporter.Export(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		s.fail(w, r, "export", err)
		return
	}
	writeJSON(w, http.StatusOK, api.ExportRecordsResponse{Key: res.Key, URL: res.URL, Count: res.Count})
}
