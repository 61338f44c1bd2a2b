package usecase

import (
	"context"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// EventPublisher 發布帳本事件
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

// NopPublisher 未設定 broker 時使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.Event) error { return nil }

func (NopPublisher) Close() error { return nil }

var _ EventPublisher = NopPublisher{}
