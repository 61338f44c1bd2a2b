package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	grpc_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/grpc"
	http_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/http"
	kafka_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/kafka"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/config"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/metrics"
	"github.com/JoeShih716/go-mem-bank/pkg/ratelimit"
)

func main() {
	// 1. 載入設定
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		log.Fatalf("Invalid ledger policy: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 帳本在 Server 都停止之後才關閉，LMAX 會把剩下的請求處理完
	ledgerCtx, stopLedger := context.WithCancel(context.Background())
	defer stopLedger()

	// 2. 初始化帳本
	var usedLedger usecase.Ledger
	var lmaxLedger *memory_adapter.LMAXLedger
	switch cfg.Ledger.Engine {
	case config.EngineMutex:
		usedLedger = memory_adapter.NewMutexLedger(policy)
	case config.EngineLMAX:
		lmaxLedger = memory_adapter.NewLMAXLedger(policy, cfg.Ledger.QueueSize)
		lmaxLedger.Start(ledgerCtx)
		usedLedger = lmaxLedger
	default:
		log.Fatalf("Invalid ledger engine: %s", cfg.Ledger.Engine)
	}
	log.Printf("Ledger engine: %s, minimum opening balance: %s", cfg.Ledger.Engine, policy.MinOpeningBalance.StringFixed(2))

	// 3. 事件發布 (未設定 broker 時不發布)
	var publisher usecase.EventPublisher = usecase.NopPublisher{}
	if cfg.KafkaEnabled() {
		publisher = kafka_adapter.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Printf("Publishing ledger events to %v topic %s", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// 4. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(usedLedger, usecase.WithPublisher(publisher))

	// 5. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	grpcServer := grpc_adapter.NewServer(grpc_adapter.NewGrpcServer(coreUseCase))
	go func() {
		log.Printf("Starting gRPC server on %s", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("failed to serve gRPC: %v", err)
		}
	}()

	// 6. 啟動 HTTP Server
	handler := http_adapter.NewHandler(coreUseCase, metrics.New())
	limiter := ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	// 定期清除閒置的 client
	go limiter.Run(ctx, cfg.RateLimit.Window)
	httpServer := http_adapter.NewServer(cfg.Server.HTTPAddr, http_adapter.NewRouter(handler, limiter))
	go func() {
		log.Printf("Starting HTTP server on %s", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve HTTP: %v", err)
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}
	grpcServer.GracefulStop()

	stopLedger()
	if lmaxLedger != nil {
		select {
		case <-lmaxLedger.Done():
		case <-shutdownCtx.Done():
			log.Println("LMAX ledger did not drain before timeout")
		}
	}
	if err := publisher.Close(); err != nil {
		log.Printf("close publisher: %v", err)
	}
	log.Println("Server exited")
}

// configPath 設定檔路徑，可用 BANK_CONFIG 覆寫
func configPath() string {
	if p := os.Getenv("BANK_CONFIG"); p != "" {
		return p
	}
	return config.DefaultPath
}
