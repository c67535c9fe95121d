package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/moodkeeper/internal/api"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

const callTimeout = 12 * time.Second

// wellnessAPI is the subset of api.WellnessClient used here.
type wellnessAPI interface {
	Ping(ctx context.Context, in *api.PingRequest, opts ...grpc.CallOption) (*api.PingResponse, error)
	RegisterUser(ctx context.Context, in *api.RegisterUserRequest, opts ...grpc.CallOption) (*api.RegisterUserResponse, error)
	Login(ctx context.Context, in *api.LoginRequest, opts ...grpc.CallOption) (*api.LoginResponse, error)
	RefreshToken(ctx context.Context, in *api.RefreshTokenRequest, opts ...grpc.CallOption) (*api.RefreshTokenResponse, error)
	AddRecord(ctx context.Context, in *api.AddRecordRequest, opts ...grpc.CallOption) (*api.AddRecordResponse, error)
	ListRecords(ctx context.Context, in *api.ListRecordsRequest, opts ...grpc.CallOption) (*api.ListRecordsResponse, error)
	DeleteRecord(ctx context.Context, in *api.DeleteRecordRequest, opts ...grpc.CallOption) (*api.DeleteRecordResponse, error)
	Trends(ctx context.Context, in *api.TrendsRequest, opts ...grpc.CallOption) (*api.TrendsResponse, error)
	GenerateRecommendation(ctx context.Context, in *api.GenerateRecommendationRequest, opts ...grpc.CallOption) (*api.GenerateRecommendationResponse, error)
	ListRecommendations(ctx context.Context, in *api.ListRecommendationsRequest, opts ...grpc.CallOption) (*api.ListRecommendationsResponse, error)
	AcceptRecommendation(ctx context.Context, in *api.AcceptRecommendationRequest, opts ...grpc.CallOption) (*api.AcceptRecommendationResponse, error)
	AddReminder(ctx context.Context, in *api.AddReminderRequest, opts ...grpc.CallOption) (*api.AddReminderResponse, error)
	ListReminders(ctx context.Context, in *api.ListRemindersRequest, opts ...grpc.CallOption) (*api.ListRemindersResponse, error)
	DeleteReminder(ctx context.Context, in *api.DeleteReminderRequest, opts ...grpc.CallOption) (*api.DeleteReminderResponse, error)
	ExportRecords(ctx context.Context, in *api.ExportRecordsRequest, opts ...grpc.CallOption) (*api.ExportRecordsResponse, error)
}

var _ wellnessAPI = (*api.WellnessClient)(nil)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      wellnessAPI

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

// accessTokenInterceptor attaches the access token and, when the server
// says it expired, refreshes the pair once and retries the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if method == api.FullMethod(api.MethodRefreshToken) {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func NewWellnessClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewWellnessClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, password []byte) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := s.client.RegisterUser(ctx, &api.RegisterUserRequest{Username: userName, Password: string(password)})
	return s.mapError(err)
}

func (s *GRPCClient) Login(ctx context.Context, userName string, password []byte) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: userName, Password: string(password)})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

// Logout forgets the token pair. The server keeps no session to end.
func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) AddRecord(ctx context.Context, rec api.Record) (string, error) {
	resp, err := s.client.AddRecord(ctx, &api.AddRecordRequest{Record: rec})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.ID, nil
}

func (s *GRPCClient) ListRecords(ctx context.Context) ([]api.Record, error) {
	resp, err := s.client.ListRecords(ctx, &api.ListRecordsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Records, nil
}

func (s *GRPCClient) DeleteRecord(ctx context.Context, id string) error {
	_, err := s.client.DeleteRecord(ctx, &api.DeleteRecordRequest{ID: id})
	return s.mapError(err)
}

func (s *GRPCClient) Trends(ctx context.Context) (*api.TrendsResponse, error) {
	resp, err := s.client.Trends(ctx, &api.TrendsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GenerateRecommendation(ctx context.Context) (*GenerateResult, error) {
	resp, err := s.client.GenerateRecommendation(ctx, &api.GenerateRecommendationRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &GenerateResult{Recommendation: resp.Recommendation, NoData: resp.NoData}, nil
}

func (s *GRPCClient) ListRecommendations(ctx context.Context) ([]api.Recommendation, error) {
	resp, err := s.client.ListRecommendations(ctx, &api.ListRecommendationsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Recommendations, nil
}

func (s *GRPCClient) AcceptRecommendation(ctx context.Context, id string) error {
	_, err := s.client.AcceptRecommendation(ctx, &api.AcceptRecommendationRequest{ID: id})
	return s.mapError(err)
}

func (s *GRPCClient) AddReminder(ctx context.Context, message, repeat, clock string) (*api.Reminder, error) {
	resp, err := s.client.AddReminder(ctx, &api.AddReminderRequest{Message: message, Repeat: repeat, Clock: clock})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &resp.Reminder, nil
}

func (s *GRPCClient) ListReminders(ctx context.Context) ([]api.Reminder, error) {
	resp, err := s.client.ListReminders(ctx, &api.ListRemindersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Reminders, nil
}

func (s *GRPCClient) DeleteReminder(ctx context.Context, id string) error {
	_, err := s.client.DeleteReminder(ctx, &api.DeleteReminderRequest{ID: id})
	return s.mapError(err)
}

func (s *GRPCClient) Export(ctx context.Context) (*api.ExportRecordsResponse, error) {
	resp, err := s.client.ExportRecords(ctx, &api.ExportRecordsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}
