// Package proto 由 ledger.proto 產生的 bank.v1.LedgerService 訊息與 gRPC 介面。
package proto

//go:generate protoc -I.. --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative ../proto/ledger.proto
