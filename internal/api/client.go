package api

import (
	"context"

	"google.golang.org/grpc"
)

// WellnessClient is a typed client stub for moodkeeper.Wellness. Every call
// is sent with the JSON content subtype.
type WellnessClient struct {
	cc grpc.ClientConnInterface
}

func NewWellnessClient(cc grpc.ClientConnInterface) *WellnessClient {
	return &WellnessClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *WellnessClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *WellnessClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	return invoke[RegisterUserResponse](ctx, c.cc, MethodRegisterUser, in, opts)
}

func (c *WellnessClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *WellnessClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *WellnessClient) AddRecord(ctx context.Context, in *AddRecordRequest, opts ...grpc.CallOption) (*AddRecordResponse, error) {
	return invoke[AddRecordResponse](ctx, c.cc, MethodAddRecord, in, opts)
}

func (c *WellnessClient) ListRecords(ctx context.Context, in *ListRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error) {
	return invoke[ListRecordsResponse](ctx, c.cc, MethodListRecords, in, opts)
}

func (c *WellnessClient) DeleteRecord(ctx context.Context, in *DeleteRecordRequest, opts ...grpc.CallOption) (*DeleteRecordResponse, error) {
	return invoke[DeleteRecordResponse](ctx, c.cc, MethodDeleteRecord, in, opts)
}

func (c *WellnessClient) Trends(ctx context.Context, in *TrendsRequest, opts ...grpc.CallOption) (*TrendsResponse, error) {
	return invoke[TrendsResponse](ctx, c.cc, MethodTrends, in, opts)
}

func (c *WellnessClient) GenerateRecommendation(ctx context.Context, in *GenerateRecommendationRequest, opts ...grpc.CallOption) (*GenerateRecommendationResponse, error) {
	return invoke[GenerateRecommendationResponse](ctx, c.cc, MethodGenerateRecommendation, in, opts)
}

func (c *WellnessClient) ListRecommendations(ctx context.Context, in *ListRecommendationsRequest, opts ...grpc.CallOption) (*ListRecommendationsResponse, error) {
	return invoke[ListRecommendationsResponse](ctx, c.cc, MethodListRecommendations, in, opts)
}

func (c *WellnessClient) AcceptRecommendation(ctx context.Context, in *AcceptRecommendationRequest, opts ...grpc.CallOption) (*AcceptRecommendationResponse, error) {
	return invoke[AcceptRecommendationResponse](ctx, c.cc, MethodAcceptRecommendation, in, opts)
}

func (c *WellnessClient) AddReminder(ctx context.Context, in *AddReminderRequest, opts ...grpc.CallOption) (*AddReminderResponse, error) {
	return invoke[AddReminderResponse](ctx, c.cc, MethodAddReminder, in, opts)
}

func (c *WellnessClient) ListReminders(ctx context.Context, in *ListRemindersRequest, opts ...grpc.CallOption) (*ListRemindersResponse, error) {
	return invoke[ListRemindersResponse](ctx, c.cc, MethodListReminders, in, opts)
}

func (c *WellnessClient) DeleteReminder(ctx context.Context, in *DeleteReminderRequest, opts ...grpc.CallOption) (*DeleteReminderResponse, error) {
	return invoke[DeleteReminderResponse](ctx, c.cc, MethodDeleteReminder, in, opts)
}

func (c *WellnessClient) ExportRecords(ctx context.Context, in *ExportRecordsRequest, opts ...grpc.CallOption) (*ExportRecordsResponse, error) {
	return invoke[ExportRecordsResponse](ctx, c.cc, MethodExportRecords, in, opts)
}
