package api

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "moodkeeper.Wellness"

const (
	MethodPing                   = "Ping"
	MethodRegisterUser           = "RegisterUser"
	MethodLogin                  = "Login"
	MethodRefreshToken           = "RefreshToken"
	MethodAddRecord              = "AddRecord"
	MethodListRecords            = "ListRecords"
	MethodDeleteRecord           = "DeleteRecord"
	MethodTrends                 = "Trends"
	MethodGenerateRecommendation = "GenerateRecommendation"
	MethodListRecommendations    = "ListRecommendations"
	MethodAcceptRecommendation   = "AcceptRecommendation"
	MethodAddReminder            = "AddReminder"
	MethodListReminders          = "ListReminders"
	MethodDeleteReminder         = "DeleteReminder"
	MethodExportRecords          = "ExportRecords"
)

// FullMethod returns the "/service/method" path gRPC routes on.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// PublicMethods can be called without an access token.
var PublicMethods = map[string]bool{
	FullMethod(MethodPing):         true,
	FullMethod(MethodRegisterUser): true,
	FullMethod(MethodLogin):        true,
	FullMethod(MethodRefreshToken): true,
}

// WellnessServer is implemented by the gRPC transport.
type WellnessServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	AddRecord(context.Context, *AddRecordRequest) (*AddRecordResponse, error)
	ListRecords(context.Context, *ListRecordsRequest) (*ListRecordsResponse, error)
	DeleteRecord(context.Context, *DeleteRecordRequest) (*DeleteRecordResponse, error)
	Trends(context.Context, *TrendsRequest) (*TrendsResponse, error)
	GenerateRecommendation(context.Context, *GenerateRecommendationRequest) (*GenerateRecommendationResponse, error)
	ListRecommendations(context.Context, *ListRecommendationsRequest) (*ListRecommendationsResponse, error)
	AcceptRecommendation(context.Context, *AcceptRecommendationRequest) (*AcceptRecommendationResponse, error)
	AddReminder(context.Context, *AddReminderRequest) (*AddReminderResponse, error)
	ListReminders(context.Context, *ListRemindersRequest) (*ListRemindersResponse, error)
	DeleteReminder(context.Context, *DeleteReminderRequest) (*DeleteReminderResponse, error)
	ExportRecords(context.Context, *ExportRecordsRequest) (*ExportRecordsResponse, error)
}

// unary adapts a typed server method to a grpc.MethodDesc, running it
// through the server's interceptor chain when one is installed.
func unary[Req, Resp any](method string, call func(WellnessServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(WellnessServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(WellnessServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes moodkeeper.Wellness for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WellnessServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodPing, WellnessServer.Ping),
		unary(MethodRegisterUser, WellnessServer.RegisterUser),
		unary(MethodLogin, WellnessServer.Login),
		unary(MethodRefreshToken, WellnessServer.RefreshToken),
		unary(MethodAddRecord, WellnessServer.AddRecord),
		unary(MethodListRecords, WellnessServer.ListRecords),
		unary(MethodDeleteRecord, WellnessServer.DeleteRecord),
		unary(MethodTrends, WellnessServer.Trends),
		unary(MethodGenerateRecommendation, WellnessServer.GenerateRecommendation),
		unary(MethodListRecommendations, WellnessServer.ListRecommendations),
		unary(MethodAcceptRecommendation, WellnessServer.AcceptRecommendation),
		unary(MethodAddReminder, WellnessServer.AddReminder),
		unary(MethodListReminders, WellnessServer.ListReminders),
		unary(MethodDeleteReminder, WellnessServer.DeleteReminder),
		unary(MethodExportRecords, WellnessServer.ExportRecords),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "moodkeeper/wellness",
}

// RegisterWellnessServer registers srv on s.
func RegisterWellnessServer(s grpc.ServiceRegistrar, srv WellnessServer) {
	s.RegisterService(&ServiceDesc, srv)
}
