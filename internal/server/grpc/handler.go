package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/moodkeeper/internal/api"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/server/auth"
)

// fail converts err to a status, logging the ones the caller cannot act on.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, op+" failed", "error", err)
	}
	return st
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *api.RegisterUserRequest) (*api.RegisterUserResponse, error) {
	user, err := s.services.Accounts.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "register", err)
	}
	s.logger.Info(ctx, "Registered", "username", user.UserName)
	return &api.RegisterUserResponse{UserID: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	tokens, err := s.services.Accounts.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}
	return &api.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.RefreshTokenResponse, error) {
	tokens, err := s.services.Accounts.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.fail(ctx, "refresh token", err)
	}
	return &api.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) AddRecord(ctx context.Context, req *api.AddRecordRequest) (*api.AddRecordResponse, error) {
	owner := auth.UserIDFromContext(ctx)
	id, err := s.services.Records.Add(ctx, owner, req.Record.ToModel(owner))
	if err != nil {
		return nil, s.fail(ctx, "add record", err)
	}
	return &api.AddRecordResponse{ID: id}, nil
}

func (s *GRPCServer) ListRecords(ctx context.Context, req *api.ListRecordsRequest) (*api.ListRecordsResponse, error) {
	recs, err := s.services.Records.List(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, "list records", err)
	}
	return &api.ListRecordsResponse{Records: api.RecordsFromModels(recs)}, nil
}

func (s *GRPCServer) DeleteRecord(ctx context.Context, req *api.DeleteRecordRequest) (*api.DeleteRecordResponse, error) {
	if err := s.services.Records.Delete(ctx, auth.UserIDFromContext(ctx), req.ID); err != nil {
		return nil, s.fail(ctx, "delete record", err)
	}
	return &api.DeleteRecordResponse{}, nil
}

func (s *GRPCServer) Trends(ctx context.Context, req *api.TrendsRequest) (*api.TrendsResponse, error) {
	t, err := s.services.Records.Trends(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, "trends", err)
	}
	return api.TrendsFromModel(t), nil
}

// GenerateRecommendation reports an owner without records in-band with
// NoData instead of as an error.
func (s *GRPCServer) GenerateRecommendation(ctx context.Context, req *api.GenerateRecommendationRequest) (*api.GenerateRecommendationResponse, error) {
	rec, err := s.services.Recommendations.Generate(ctx, auth.UserIDFromContext(ctx))
	if errors.Is(err, common.ErrNoData) {
		return &api.GenerateRecommendationResponse{NoData: true}, nil
	}
	if err != nil {
		return nil, s.fail(ctx, "generate recommendation", err)
	}
	out := api.RecommendationFromModel(*rec)
	return &api.GenerateRecommendationResponse{Recommendation: &out}, nil
}

func (s *GRPCServer) ListRecommendations(ctx context.Context, req *api.ListRecommendationsRequest) (*api.ListRecommendationsResponse, error) {
	recs, err := s.services.Recommendations.List(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, "list recommendations", err)
	}
	return &api.ListRecommendationsResponse{Recommendations: api.RecommendationsFromModels(recs)}, nil
}

func (s *GRPCServer) AcceptRecommendation(ctx context.Context, req *api.AcceptRecommendationRequest) (*api.AcceptRecommendationResponse, error) {
	if err := s.services.Recommendations.Accept(ctx, auth.UserIDFromContext(ctx), req.ID); err != nil {
		return nil, s.fail(ctx, "accept recommendation", err)
	}
	return &api.AcceptRecommendationResponse{}, nil
}

func (s *GRPCServer) AddReminder(ctx context.Context, req *api.AddReminderRequest) (*api.AddReminderResponse, error) {
	r, err := s.services.Reminders.Add(ctx, auth.UserIDFromContext(ctx), req.Message, req.Repeat, req.Clock)
	if err != nil {
		return nil, s.fail(ctx, "add reminder", err)
	}
	return &api.AddReminderResponse{Reminder: api.ReminderFromModel(r.Reminder, r.NextFire)}, nil
}

func (s *GRPCServer) ListReminders(ctx context.Context, req *api.ListRemindersRequest) (*api.ListRemindersResponse, error) {
	rems, err := s.services.Reminders.List(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, "list reminders", err)
	}
	out := make([]api.Reminder, 0, len(rems))
	for _, r := range rems {
		out = append(out, api.ReminderFromModel(r.Reminder, r.NextFire))
	}
	return &api.ListRemindersResponse{Reminders: out}, nil
}

func (s *GRPCServer) DeleteReminder(ctx context.Context, req *api.DeleteReminderRequest) (*api.DeleteReminderResponse, error) {
	if err := s.services.Reminders.Delete(ctx, auth.UserIDFromContext(ctx), req.ID); err != nil {
		return nil, s.fail(ctx, "delete reminder", err)
	}
	return &api.DeleteReminderResponse{}, nil
}

func (s *GRPCServer) ExportRecords(ctx context.Context, req *api.ExportRecordsRequest) (*api.ExportRecordsResponse, error) {
	res, err := s.services.Exporter.Export(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return nil, s.fail(ctx, "export", err)
	}
	return &api.ExportRecordsResponse{Key: res.Key, URL: res.URL, Count: res.Count}, nil
}
