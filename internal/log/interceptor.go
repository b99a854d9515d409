package log

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// UnaryServerInterceptor logs every unary RPC with its duration and outcome.
func UnaryServerInterceptor(logger Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Error("rpc failed", "method", info.FullMethod, "took", time.Since(start).String(), "err", err)
			return resp, err
		}
		logger.Debug("rpc handled", "method", info.FullMethod, "took", time.Since(start).String())
		return resp, nil
	}
}
