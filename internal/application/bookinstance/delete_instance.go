package bookinstance

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/bookinstance"
)

// DeleteInstanceUseCase 删除副本用例
// 副本没有下游依赖,不需要删除前检查
type DeleteInstanceUseCase struct {
	instanceService bookinstance.Service
	logger          *zap.Logger
}

// NewDeleteInstanceUseCase 创建删除副本用例
func NewDeleteInstanceUseCase(instanceService bookinstance.Service, logger *zap.Logger) *DeleteInstanceUseCase {
	return &DeleteInstanceUseCase{instanceService: instanceService, logger: logger}
}

// Confirm 删除确认页,副本不存在返回ErrBookInstanceNotFound
func (uc *DeleteInstanceUseCase) Confirm(ctx context.Context, id uint) (*bookinstance.BookInstance, error) {
	return uc.instanceService.GetInstance(ctx, id)
}

// Execute 执行删除,副本不存在返回ErrBookInstanceNotFound
func (uc *DeleteInstanceUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.instanceService.DeleteInstance(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("副本已删除", zap.Uint("instance_id", id))
	return nil
}
