package grpc

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	pb "github.com/JoeShih716/go-mem-bank/proto"
)

// LoggingInterceptor 記錄每個 unary 呼叫的方法、結果代碼與耗時
func LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	log.Printf("[gRPC] %s %s %v", info.FullMethod, status.Code(err), time.Since(start))
	return resp, err
}

// NewServer 建立已註冊 LedgerService 的 gRPC Server
func NewServer(core *GrpcServer, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(LoggingInterceptor)}, opts...)
	s := grpc.NewServer(opts...)
	pb.RegisterLedgerServiceServer(s, core)
	reflection.Register(s) // 方便 grpcurl / Postman 直接呼叫
	return s
}
